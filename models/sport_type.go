// SPDX-License-Identifier: Apache-2.0

package models

import "strconv"

// SportType is the Coros sport code attached to every activity. Values
// outside the known set are kept verbatim so new sports introduced by the
// service do not break listing or caching.
type SportType int

// Sport codes observed in the Coros Training Center API.
const (
	Run          SportType = 100
	IndoorRun    SportType = 101
	TrackRun     SportType = 103
	Hike         SportType = 104
	MtnClimb     SportType = 105
	Bike         SportType = 200
	IndoorBike   SportType = 201
	PoolSwim     SportType = 300
	OpenWater    SportType = 301
	GymCardio    SportType = 400
	GpsCardio    SportType = 401
	Strength     SportType = 402
	Ski          SportType = 500
	Snowboard    SportType = 501
	XcSki        SportType = 502
	SkiTouring   SportType = 503
	Rowing       SportType = 700
	IndoorRower  SportType = 701
	Whitewater   SportType = 702
	Flatwater    SportType = 704
	Windsurfing  SportType = 705
	Speedsurfing SportType = 706
	Walk         SportType = 900
)

var sportTypeNames = map[SportType]string{
	Run:          "Run",
	IndoorRun:    "Indoor Run",
	TrackRun:     "Track Run",
	Hike:         "Hike",
	MtnClimb:     "Mountain Climb",
	Bike:         "Bike",
	IndoorBike:   "Indoor Bike",
	PoolSwim:     "Pool Swim",
	OpenWater:    "Open Water",
	GymCardio:    "Gym Cardio",
	GpsCardio:    "GPS Cardio",
	Strength:     "Strength",
	Ski:          "Ski",
	Snowboard:    "Snowboard",
	XcSki:        "XC Ski",
	SkiTouring:   "Ski Touring",
	Rowing:       "Rowing",
	IndoorRower:  "Indoor Rower",
	Whitewater:   "Whitewater",
	Flatwater:    "Flatwater",
	Windsurfing:  "Windsurfing",
	Speedsurfing: "Speedsurfing",
	Walk:         "Walk",
}

// String returns the human-readable sport name, or the raw numeric code
// for sports this client does not know about.
func (s SportType) String() string {
	if name, ok := sportTypeNames[s]; ok {
		return name
	}
	return "Sport " + strconv.Itoa(int(s))
}

// Known reports whether the sport code is one this client recognizes.
func (s SportType) Known() bool {
	_, ok := sportTypeNames[s]
	return ok
}
