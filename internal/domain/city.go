package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownCity = errors.New("unknown city")

type City string

const (
	CityBanglore   City = "BANGLORE"
	CityChandigarh City = "CHANDIGARH"
	CityDelhi      City = "DELHI"
	CityKanpur     City = "KANPUR"
	CityKolkata    City = "KOLKATA"
	CityMumbai     City = "MUMBAI"
)

var cities = map[City]struct{}{
	CityBanglore:   {},
	CityChandigarh: {},
	CityDelhi:      {},
	CityKanpur:     {},
	CityKolkata:    {},
	CityMumbai:     {},
}

// ParseCity accepts a city name in any letter case.
func ParseCity(s string) (City, error) {
	c := City(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := cities[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCity, s)
	}
	return c, nil
}
