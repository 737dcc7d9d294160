package grid

import (
	"fmt"
	"image/color"
	"sort"
)

// Data-related terms shown on the tiles.
var dataTerms = []string{
	"DATA", "JSON", "API", "SQL", "NoSQL", "MongoDB", "Redis",
	"GraphQL", "REST", "ETL", "ELT", "Pipeline", "Stream",
	"Batch", "Real-time", "Analytics", "ML", "AI", "Tensor",
	"Vector", "Matrix", "Dataset", "Schema", "Index", "Query",
	"Cache", "Queue", "Kafka", "Spark", "Hadoop", "Hive",
	"Presto", "Druid", "ClickHouse", "BigQuery", "Snowflake",
	"Warehouse", "Lake", "Delta", "Parquet", "Avro", "ORC",
}

// Longer, multi-word terms; these exercise two-line wrapping.
var platformTerms = []string{
	"Data Lake", "Feature Store", "Stream Processing", "Change Data Capture",
	"Vector Database", "Query Engine", "Message Queue", "Data Warehouse",
	"Schema Registry", "Batch Job", "Event Log", "Object Storage",
	"Column Store", "Time Series", "Graph Database", "Data Catalog",
}

var classicColors = []color.RGBA{
	Hex("#FF6B6B"), Hex("#4ECDC4"), Hex("#45B7D1"), Hex("#FFA07A"), Hex("#98D8C8"),
	Hex("#F7DC6F"), Hex("#BB8FCE"), Hex("#85C1E2"), Hex("#F8B739"), Hex("#52BE80"),
}

var neonColors = []color.RGBA{
	Hex("#FF00FF"), Hex("#00FFFF"), Hex("#39FF14"), Hex("#FF3131"),
	Hex("#FFF01F"), Hex("#BC13FE"), Hex("#1F51FF"), Hex("#FF5F1F"),
}

var pastelColors = []color.RGBA{
	Hex("#FFD1DC"), Hex("#C1E1C1"), Hex("#AEC6CF"), Hex("#FDFD96"),
	Hex("#CBAACB"), Hex("#FFB347"), Hex("#B39EB5"), Hex("#77DD77"),
}

var sunsetColors = []color.RGBA{
	Hex("#FF4E50"), Hex("#FC913A"), Hex("#F9D423"), Hex("#EDE574"),
	Hex("#E1F5C4"), Hex("#6C5B7B"), Hex("#C06C84"), Hex("#F67280"),
}

var terminalColors = []color.RGBA{
	Hex("#00FF41"), Hex("#008F11"), Hex("#003B00"), Hex("#0D0208"), Hex("#20C20E"),
}

// PresetDef is a named configuration and catalog pair.
type PresetDef struct {
	Name        string
	Description string
	Config      Config
	Catalog     *Catalog
}

var presets = map[string]func() PresetDef{
	"classic": func() PresetDef {
		return PresetDef{
			Description: "Horizon at mid-screen with the core data terms",
			Config:      DefaultConfig(),
			Catalog:     MustCatalog(Zip(dataTerms, classicColors)),
		}
	},
	"horizon": func() PresetDef {
		c := DefaultConfig()
		c.VanishY = 0.3
		c.ScaleDivisor = 0.7
		return PresetDef{
			Description: "High horizon, tiles grow quickly toward the viewer",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, classicColors)),
		}
	},
	"warehouse": func() PresetDef {
		c := DefaultConfig()
		c.Spacing = 140
		c.Speed = 1.0
		c.Background = Hex("#101820")
		c.GridLine = Hex("#2A3B4C")
		return PresetDef{
			Description: "Wide cells carrying multi-word platform terms",
			Config:      c,
			Catalog:     MustCatalog(Zip(platformTerms, classicColors)),
		}
	},
	"streaming": func() PresetDef {
		c := DefaultConfig()
		c.Speed = 3.0
		c.Spacing = 80
		return PresetDef{
			Description: "Fast scroll with tighter spacing",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, classicColors)),
		}
	},
	"neon": func() PresetDef {
		c := DefaultConfig()
		c.Background = Hex("#05010F")
		c.GridLine = Hex("#FF00FF")
		c.GridLineWidth = 2
		return PresetDef{
			Description: "Synthwave palette on a dark violet plane",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, neonColors)),
		}
	},
	"pastel": func() PresetDef {
		c := DefaultConfig()
		c.Background = Hex("#2B2B3A")
		c.GridLine = Hex("#4A4A5E")
		return PresetDef{
			Description: "Soft palette; labels switch to dark text",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, pastelColors)),
		}
	},
	"dense": func() PresetDef {
		c := DefaultConfig()
		c.Spacing = 60
		c.Rows = 200
		c.ScaleDivisor = 0.9
		return PresetDef{
			Description: "Small cells, many rows",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, classicColors)),
		}
	},
	"wide": func() PresetDef {
		c := DefaultConfig()
		c.Coverage = 5
		c.VanishY = 0.4
		c.CullMargin = 200
		return PresetDef{
			Description: "Extra overscan for ultra-wide viewports",
			Config:      c,
			Catalog:     MustCatalog(Zip(platformTerms, pastelColors)),
		}
	},
	"sunset": func() PresetDef {
		c := DefaultConfig()
		c.VanishY = 0.45
		c.VanishX = 0.4
		c.Background = Hex("#1A0A1E")
		c.GridLine = Hex("#C06C84")
		return PresetDef{
			Description: "Warm palette with an off-center vanishing point",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, sunsetColors)),
		}
	},
	"terminal": func() PresetDef {
		c := DefaultConfig()
		c.Spacing = 120
		c.Speed = 1.2
		c.Background = Hex("#000000")
		c.GridLine = Hex("#003B00")
		return PresetDef{
			Description: "Green phosphor, suited to the terminal host",
			Config:      c,
			Catalog:     MustCatalog(Zip(dataTerms, terminalColors)),
		}
	},
}

// DefaultPreset is used when no preset is configured.
const DefaultPreset = "classic"

// Preset returns a fresh copy of the named preset.
func Preset(name string) (PresetDef, error) {
	if name == "" {
		name = DefaultPreset
	}
	build, ok := presets[name]
	if !ok {
		return PresetDef{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	p := build()
	p.Name = name
	return p, nil
}

// PresetNames returns all preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
