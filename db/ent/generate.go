package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Regenerates gen/ent from the schemas in db/ent/schema. Run from the repo
// root: go run ./db/ent
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/klearrshipping/cudabot/gen/ent",
			Schema:  "github.com/klearrshipping/cudabot/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
