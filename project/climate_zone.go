package project

import "fmt"

// 気候区分
type ClimateZone string

const (
	ClimateZoneH1a ClimateZone = "H1a"
	ClimateZoneH1b ClimateZone = "H1b"
	ClimateZoneH1c ClimateZone = "H1c"
	ClimateZoneH2a ClimateZone = "H2a"
	ClimateZoneH2b ClimateZone = "H2b"
	ClimateZoneH2c ClimateZone = "H2c"
	ClimateZoneH2d ClimateZone = "H2d"
	ClimateZoneH3  ClimateZone = "H3"
)

func ClimateZoneFromString(str string) (ClimateZone, error) {
	z := ClimateZone(str)
	if _, ok := climateZoneNames[z]; !ok {
		return "", fmt.Errorf("%w: climate zone %q", ErrInvalidProject, str)
	}
	return z, nil
}

var climateZoneNames = map[ClimateZone]string{
	ClimateZoneH1a: "Northern France",
	ClimateZoneH1b: "Eastern France",
	ClimateZoneH1c: "Paris region",
	ClimateZoneH2a: "Brittany",
	ClimateZoneH2b: "Central France",
	ClimateZoneH2c: "South-West",
	ClimateZoneH2d: "Mediterranean South-East",
	ClimateZoneH3:  "Mediterranean",
}

func (z ClimateZone) Description() string {
	return string(z) + " - " + climateZoneNames[z]
}
