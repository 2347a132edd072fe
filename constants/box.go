package constants

// Box identifies one numbered slot on the ESAD declaration form.
type Box string

// Boxes with secondary processing support.
const (
	BoxTransactionType Box = "24" // Nature of transaction
	BoxTransportMode   Box = "25" // Mode of transport at the border
	BoxPackageType     Box = "31" // Packages and description of goods
	BoxRegimeType      Box = "37" // Procedure (regime type)
)

var allBoxes = []Box{
	BoxTransactionType,
	BoxTransportMode,
	BoxPackageType,
	BoxRegimeType,
}

// AllBoxes returns the boxes in declaration-form order.
func AllBoxes() []Box {
	out := make([]Box, len(allBoxes))
	copy(out, allBoxes)
	return out
}

func (b Box) String() string {
	return string(b)
}
