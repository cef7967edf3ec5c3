package schema

// Custom string types for type safety.
type (
	// TypologyName identifies one personality framework (e.g. Socionics).
	TypologyName string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the backend holding score, weight and status documents.
	DatabaseBackend string
)

// Built-in typologies plus the plugin typologies registered at startup.
const (
	Temporistics TypologyName = "Temporistics"
	Psychosophia TypologyName = "Psychosophia"
	Amatoric     TypologyName = "Amatoric"
	Socionics    TypologyName = "Socionics"
	IQ           TypologyName = "IQ"
	Temperament  TypologyName = "Temperament"
)

// BuiltinTypologies lists the typologies compiled into every registry.
var BuiltinTypologies = []TypologyName{Temporistics, Psychosophia, Amatoric, Socionics}

// WeightedTypologies lists the keys written when bootstrapping weight and status documents.
var WeightedTypologies = []TypologyName{Temporistics, Psychosophia, Amatoric, Socionics, IQ}

// Labels shared by several typologies. Categories are still scoped per typology.
const (
	UnknownRelationship = "Unknown Relationship"
	IdentityPhilia      = "Identity/Philia"
	OrderFullOrder      = "Order/Full Order"
	Identity            = "Identity"
)

// TypeDelimiter joins the aspects of a canonical type string.
const TypeDelimiter = ", "

// Defaults applied by the engine and bootstrap documents.
const (
	DefaultWeight             = 1.0
	DefaultEnabled            = true
	DefaultComfortThreshold   = 50
	DefaultMaxDistanceKm      = 100.0
	EarthRadiusKm             = 6371.0
	WeightsDocument           = "typology_weights.json"
	StatusDocument            = "typology_status.json"
	SocionicsScoresDocument   = "socionics_relationships.json"
	comfortScoresDocumentTail = "_comfort_scores.json"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All document backends supported.
const (
	FileBackend       DatabaseBackend = "file" // default
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	MemoryBackend     DatabaseBackend = "memory"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidDatabaseBackends lists all valid document backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	FileBackend:       {},
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	MemoryBackend:     {},
}
