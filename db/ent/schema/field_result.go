package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type FieldResult struct{ ent.Schema }

func (FieldResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "esad_field_result"},
	}
}

func (FieldResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("order_id", uuid.UUID{}),
		field.String("box").NotEmpty(),
		field.String("code").NotEmpty(),
		field.String("label"),
		field.Float("confidence").
			SchemaType(map[string]string{dialect.Postgres: "numeric(4,3)"}),
		field.String("matched_rule").Optional().Nillable(),
		field.Text("signal").Optional(),
		field.String("signal_origin").Optional(),
		field.Bool("fallback_used").Default(false),
		field.String("reason").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (FieldResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("order", Order.Type).
			Ref("field_results").
			Field("order_id").
			Unique().
			Required(),
	}
}
