package fields

import (
	"github.com/klearrshipping/cudabot/constants"
	"github.com/klearrshipping/cudabot/internal/codetable"
)

// Box 31, kind of packages. Codes come from the UN/ECE Recommendation 21
// subset the package_type table carries. "PK" (Package) is the neutral
// default when the documents give no packaging detail.
const packageTypeFile = "package_type.csv"

var packageSignalKeys = []string{
	"package_details",
	"packages",
	"kind_of_packages",
	"goods_description",
}

func packageTypeTable() (*codetable.Table, error) {
	return codetable.New(constants.BoxPackageType.String(), []codetable.Entry{
		{
			Code:  "CT",
			Label: "Carton",
			Patterns: []string{
				"carton", "ctn", "ctns",
			},
		},
		{
			Code:  "PL",
			Label: "Pallet",
			Patterns: []string{
				"pallet", "plt", "skid",
			},
		},
		{
			Code:  "DR",
			Label: "Drum",
			Patterns: []string{
				"drum", "barrel",
			},
		},
		{
			Code:  "BG",
			Label: "Bag",
			Patterns: []string{
				"bag", "bags", "sack",
			},
		},
		{
			Code:  "BX",
			Label: "Box",
			Patterns: []string{
				"box", "boxes", "case", "crate",
			},
		},
		{
			Code:  "PK",
			Label: "Package",
			Patterns: []string{
				"package", "pkg", "pkgs", "piece",
			},
		},
	}, "PK")
}
