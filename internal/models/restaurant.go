package models

import (
	"fmt"
	"strings"
)

// RestaurantInfo is the singleton profile for one deployment. It is created
// during registration and mutated by the settings screen.
type RestaurantInfo struct {
	Name         string `json:"name"`
	Slogan       string `json:"slogan,omitempty"`
	Category     string `json:"category,omitempty"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	WifiName     string `json:"wifiName,omitempty"`
	WifiPassword string `json:"wifiPassword,omitempty"`
}

// ValidateRestaurantInfo checks the fields registration must fill in.
func ValidateRestaurantInfo(info *RestaurantInfo) error {
	if strings.TrimSpace(info.Name) == "" {
		return fmt.Errorf("restaurant name is required")
	}
	if strings.TrimSpace(info.Phone) == "" {
		return fmt.Errorf("restaurant phone is required")
	}
	if strings.TrimSpace(info.Address) == "" {
		return fmt.Errorf("restaurant address is required")
	}
	return nil
}
