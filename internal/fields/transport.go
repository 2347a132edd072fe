package fields

import (
	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/codetable"
)

// Box 25, mode of transport at the border. Codes follow the official
// transport_mode table; rail shipments map to road (3) as the closest
// official code. Ocean (1) is the designated default because the vast
// majority of declarations arrive by sea.
const transportModeFile = "transport_mode.csv"

var transportSignalKeys = []string{
	"transport_details",
	"mode_of_transport",
	"vessel",
	"voyage",
	"shipping_method",
	"carrier",
}

func transportModeTable() (*codetable.Table, error) {
	return codetable.New(constants.BoxTransportMode.String(), []codetable.Entry{
		{
			Code:  "1",
			Label: "Ocean Transport",
			Patterns: []string{
				"vessel", "voyage", "port", "berth", "maritime", "harbor", "ocean",
			},
		},
		{
			Code:  "3",
			Label: "Road Transport",
			Patterns: []string{
				"truck", "highway", "road", "trailer", "van", "rail", "train", "railway",
			},
		},
		{
			Code:  "4",
			Label: "Air Transport",
			Patterns: []string{
				"flight", "airway", "aircraft", "airline", "air freight", "airfreight",
			},
		},
		{
			Code:  "5",
			Label: "Postal Transport",
			Patterns: []string{
				"mail", "courier", "parcel", "postal",
			},
		},
		{
			Code:  "7",
			Label: "Fixed Transport Installation",
			Patterns: []string{
				"pipeline", "conveyor", "cable", "transmission",
			},
		},
	}, "1")
}
