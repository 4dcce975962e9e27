package testutil

// Canned upstream bodies shared by handler tests.
const (
	WorkoutsJSON = `[{"id":1,"name":"5K Run","difficulty":"hard","duration":30}]`

	WorkoutsEnvelopeJSON = `{"count":1,"next":null,"previous":null,"results":` + WorkoutsJSON + `}`

	ActivitiesJSON = `[
		{"id":7,"user":"thundergod","activity_type":"Running","duration":45,"calories_burned":520,"date":"2024-03-05"},
		{"id":8,"user":"ironman","activity_type":"Cycling","duration":60,"calories_burned":700,"date":"not a date"}
	]`

	LeaderboardJSON = `[
		{"id":1,"user":"thundergod","team":"Marvel","total_points":950,"activities_count":12},
		{"id":2,"user":"batman","team":"DC","total_points":900,"activities_count":11},
		{"id":3,"user":"ironman","team":"Marvel","total_points":870,"activities_count":10},
		{"id":4,"user":"wonderwoman","team":"DC","total_points":800,"activities_count":9}
	]`

	TeamsJSON = `{"results":[
		{"id":1,"name":"Team Marvel","description":"Avengers assemble","members":["thundergod","ironman","spiderman"]},
		{"id":2,"name":"Team DC","description":"Justice League","members":null}
	]}`

	UsersJSON = `[{"id":3,"username":"thundergod","email":"thor@asgard.example","first_name":"Thor","last_name":"Odinson"}]`

	// ObjectJSON is a JSON object with no results array.
	ObjectJSON = `{"detail":"ok"}`

	MalformedJSON = `{"results": [`
)
