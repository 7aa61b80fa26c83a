package repository

import (
	"testing"

	"github.com/piresc/olbiataxi/internal/pkg/constants"
	"github.com/piresc/olbiataxi/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRepository_BasePrice(t *testing.T) {
	repo := NewCatalogRepository()

	tests := []struct {
		name      string
		from      string
		to        string
		wantPrice float64
		wantFound bool
	}{
		{name: "airport to city center", from: "Airport", to: "City Center", wantPrice: 40, wantFound: true},
		{name: "airport to hotel zone", from: "Airport", to: "Hotel Zone", wantPrice: 55, wantFound: true},
		{name: "city center to hotel zone", from: "City Center", to: "Hotel Zone", wantPrice: 25, wantFound: true},
		{name: "reverse direction", from: "Hotel Zone", to: "City Center", wantPrice: 25, wantFound: true},
		{name: "same location", from: "Airport", to: "Airport", wantFound: false},
		{name: "home landmark is not priced", from: constants.HomeLocation, to: "Airport", wantFound: false},
		{name: "case sensitive", from: "airport", to: "City Center", wantFound: false},
		{name: "empty", from: "", to: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := repo.BasePrice(tt.from, tt.to)
			assert.Equal(t, tt.wantFound, ok)
			assert.Equal(t, tt.wantPrice, price)
		})
	}
}

func TestCatalogRepository_TravelInfo(t *testing.T) {
	repo := NewCatalogRepository()

	info, ok := repo.TravelInfo("Airport", "City Center")
	require.True(t, ok)
	assert.Equal(t, "35 mins", info.Duration)
	assert.Equal(t, "24 km", info.Distance)

	// Travel info is asymmetric
	info, ok = repo.TravelInfo("City Center", "Airport")
	require.True(t, ok)
	assert.Equal(t, "38 mins", info.Duration)

	_, ok = repo.TravelInfo("Airport", "Airport")
	assert.False(t, ok)
}

func TestCatalogRepository_Lookups(t *testing.T) {
	repo := NewCatalogRepository()

	loc, ok := repo.Location(constants.HomeLocation)
	require.True(t, ok)
	assert.Equal(t, 40.9294, loc.Latitude)
	assert.Equal(t, 9.5145, loc.Longitude)

	extra, ok := repo.Extra("child_seat")
	require.True(t, ok)
	assert.Equal(t, "Child seat", extra.Label)
	assert.Equal(t, 10.0, extra.Surcharge)

	_, ok = repo.Extra("champagne")
	assert.False(t, ok)

	opt, ok := repo.ExtraTimeOption("60min")
	require.True(t, ok)
	assert.Equal(t, "+1 hour", opt.Label)
	assert.Equal(t, 25.0, opt.Surcharge)

	assert.Len(t, repo.Locations(), 4)
	assert.Len(t, repo.Routes(), 6)
	assert.Len(t, repo.Extras(), 3)
	assert.Len(t, repo.ExtraTimeOptions(), 3)
}

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	data := CatalogData{
		Locations: []models.Location{{Name: "A"}, {Name: "B"}},
		Routes:    []models.PriceRoute{{From: "A", To: "B", Price: 12.5}},
	}
	repo := NewCatalogRepositoryFrom(data)

	data.Routes[0].Price = 99
	price, ok := repo.BasePrice("A", "B")
	require.True(t, ok)
	assert.Equal(t, 12.5, price)

	locations := repo.Locations()
	locations[0].Name = "changed"
	_, ok = repo.Location("A")
	assert.True(t, ok)
	assert.Equal(t, "A", repo.Locations()[0].Name)
}
