package interpreter

import "fmt"

// generateAlternatives produces rephrasings of a resolved command for the
// interpret response. Only the power and level actions have natural
// rewordings; everything else returns an empty list.
func generateAlternatives(device, action string) []string {
	alts := []string{}
	switch action {
	case "ON":
		alts = append(alts,
			fmt.Sprintf("Switch on the %s", device),
			fmt.Sprintf("Enable the %s", device),
			fmt.Sprintf("Turn the %s on", device),
			fmt.Sprintf("Activate the %s", device),
		)
	case "OFF":
		alts = append(alts,
			fmt.Sprintf("Switch off the %s", device),
			fmt.Sprintf("Disable the %s", device),
			fmt.Sprintf("Turn the %s off", device),
			fmt.Sprintf("Deactivate the %s", device),
		)
	case "INCREASE":
		alts = append(alts,
			fmt.Sprintf("Raise the %s", device),
			fmt.Sprintf("Turn up the %s", device),
		)
	case "DECREASE":
		alts = append(alts,
			fmt.Sprintf("Lower the %s", device),
			fmt.Sprintf("Turn down the %s", device),
		)
	}
	return alts
}
