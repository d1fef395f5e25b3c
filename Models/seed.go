package Models

import (
	"fmt"
	"log"
	"os"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

// SeedFile is the optional bootstrap data dropped next to the binary.
// JSON5 so the file can carry comments for whoever maintains it.
type SeedFile struct {
	Departments []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"departments"`
	Templates []struct {
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		DefaultPriority string  `json:"default_priority"`
		EstimatedHours  float64 `json:"estimated_hours"`
	} `json:"templates"`
}

// SeedFromFile loads departments and task templates from a JSON5 file,
// creating only the ones that do not exist yet.
func SeedFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed SeedFile
	if err := json5.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, d := range seed.Departments {
		if d.Name == "" {
			continue
		}
		var dept Department
		err := DB.Where("name = ?", d.Name).FirstOrCreate(&dept, Department{
			Name:        d.Name,
			Description: d.Description,
		}).Error
		if err != nil {
			log.Printf("Failed to seed department %q: %v", d.Name, err)
		}
	}

	for _, t := range seed.Templates {
		if t.Name == "" {
			continue
		}
		priority := t.DefaultPriority
		if !ValidPriority(priority) {
			priority = PriorityMedium
		}
		var tmpl TaskTemplate
		err := DB.Where("name = ?", t.Name).FirstOrCreate(&tmpl, TaskTemplate{
			Name:            t.Name,
			Description:     t.Description,
			DefaultPriority: priority,
			EstimatedHours:  t.EstimatedHours,
		}).Error
		if err != nil {
			log.Printf("Failed to seed template %q: %v", t.Name, err)
		}
	}

	return nil
}
