// internal/domain/exercise.go
package domain

// ExerciseRecord represents a single exercise definition in the catalog.
// Records are immutable once loaded into the catalog index.
type ExerciseRecord struct {
	ID               string   `bson:"_id,omitempty" json:"id"`
	Name             string   `bson:"name" json:"name"`
	Category         string   `bson:"category,omitempty" json:"category,omitempty"`   // e.g., "strength", "stretching"
	Equipment        string   `bson:"equipment,omitempty" json:"equipment,omitempty"` // e.g., "body only", "dumbbell"
	Force            string   `bson:"force,omitempty" json:"force,omitempty"`         // e.g., "push", "pull", "static"
	Level            string   `bson:"level,omitempty" json:"level,omitempty"`         // e.g., "beginner"
	Mechanic         string   `bson:"mechanic,omitempty" json:"mechanic,omitempty"`   // e.g., "compound", "isolation"
	PrimaryMuscles   []string `bson:"primaryMuscles,omitempty" json:"primaryMuscles"`
	SecondaryMuscles []string `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles"`
	Instructions     []string `bson:"instructions,omitempty" json:"instructions"`
	Images           []string `bson:"images,omitempty" json:"images"` // Web paths of the exercise images
}

// Equipment tags as they appear in the exercise catalog.
const (
	EquipmentBodyOnly    = "body only"
	EquipmentDumbbell    = "dumbbell"
	EquipmentBands       = "bands"
	EquipmentKettlebells = "kettlebells"
	EquipmentBarbell     = "barbell"
	EquipmentMachine     = "machine"
)

// Catalog categories used by the workout generator.
const (
	CategoryStrength   = "strength"
	CategoryStretching = "stretching"
)

// DefaultEquipment is the equipment a home/gym user is assumed to have
// when no explicit list is configured.
func DefaultEquipment() []string {
	return []string{
		EquipmentBodyOnly,
		EquipmentDumbbell,
		EquipmentBands,
		EquipmentKettlebells,
		EquipmentBarbell,
		EquipmentMachine,
	}
}
