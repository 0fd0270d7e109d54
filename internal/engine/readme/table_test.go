package readme_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/brewtap/internal/core/domain"
	"go.trai.ch/brewtap/internal/engine/readme"
)

func records() []domain.FormulaRecord {
	return []domain.FormulaRecord{
		{
			Name:        "secure-browser-kiosk",
			Description: "Kiosk mode for browsers",
			Homepage:    "https://github.com/octo/secure-browser-kiosk",
		},
		{
			Name:     "tool",
			Homepage: "https://github.com/octo/tool",
		},
		{
			Name:        "pipes",
			Description: "Read a | b",
		},
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name   string
		golden string
		owner  string
		tap    string
	}{
		{"qualified install", "table_qualified", "octo", "homebrew-tools"},
		{"unqualified install", "table_unqualified", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := goldie.New(t)
			g.Assert(t, tt.golden, []byte(readme.Table(records(), tt.owner, tt.tap)))
		})
	}
}

func TestTable_HeaderOnly(t *testing.T) {
	assert.Equal(t,
		"| Project | Description | Install |\n| ------- | ----------- | ------- |\n",
		readme.Table(nil, "octo", "tools"))
}
