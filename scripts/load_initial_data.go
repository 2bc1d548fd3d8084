package main

import (
	"encoding/json"
	"log"

	"netlist-visualizer-backend/internal/config"
	"netlist-visualizer-backend/internal/database"
	"netlist-visualizer-backend/internal/database/models"
	"netlist-visualizer-backend/internal/netlist"

	"gorm.io/gorm"
)

// Sample netlists seeded into a fresh database. Validation is recomputed at
// insert time so the stored reports always match the current rule set.
var samples = []struct {
	userID  string
	netlist string
}{
	{
		userID: "anonymous",
		netlist: `{
  "components": [
    {"id": "U1", "name": "MCU", "type": "ic", "pins": [{"id": "VCC", "name": "VCC"}, {"id": "GND", "name": "GND"}, {"id": "TX", "name": "TX"}]},
    {"id": "J1", "name": "Header", "type": "connector", "pins": [{"id": "P1", "name": "P1"}, {"id": "P2", "name": "P2"}]}
  ],
  "nets": [
    {"id": "N1", "name": "GND", "connections": [{"componentId": "U1", "pinId": "GND"}, {"componentId": "J1", "pinId": "P2"}]},
    {"id": "N2", "name": "UART_TX", "connections": [{"componentId": "U1", "pinId": "TX"}, {"componentId": "J1", "pinId": "P1"}]}
  ]
}`,
	},
	{
		userID: "anonymous",
		netlist: `{
  "components": [
    {"id": "U1", "name": "Regulator", "type": "ic", "pins": [{"id": "VCC", "name": "VCC"}, {"id": "GND", "name": "GND"}]},
    {"id": "U2", "name": "Debug port", "type": "connector", "pins": [{"id": "P1", "name": "P1"}]}
  ],
  "nets": [
    {"id": "N1", "name": "GND", "connections": [{"componentId": "U1", "pinId": "GND"}]},
    {"id": "N2", "name": "DATA", "connections": [{"componentId": "U2", "pinId": "P1"}]}
  ]
}`,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	rules := netlist.DefaultRuleConfig()
	if cfg.RulesConfigPath != "" {
		rules, err = netlist.LoadRuleConfig(cfg.RulesConfigPath)
		if err != nil {
			log.Fatal("Failed to load rule config:", err)
		}
	}

	for i, sample := range samples {
		if err := seed(db, rules, sample.userID, []byte(sample.netlist)); err != nil {
			log.Fatalf("Failed to seed sample %d: %v", i, err)
		}
	}

	log.Printf("Seeded %d sample submissions", len(samples))
}

func seed(db *gorm.DB, rules netlist.RuleConfig, userID string, raw []byte) error {
	_, result, err := netlist.Validate(raw, rules)
	if err != nil {
		return err
	}

	violations, err := json.Marshal(result.Violations)
	if err != nil {
		return err
	}

	submission := models.Submission{
		UserID:     userID,
		Netlist:    json.RawMessage(raw),
		Status:     string(result.Status),
		Violations: violations,
	}
	return db.Create(&submission).Error
}
