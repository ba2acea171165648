package viewing

import (
	"github.com/vfg2006/ads-report-api/internal/domain"
	"gopkg.in/yaml.v3"
)

// defaultLayoutsYAML define as configurações de exibição embutidas. O
// dashboard usa a visão "report"; as demais são variações reduzidas.
const defaultLayoutsYAML = `
layouts:
  - name: report
    columns:
      - { key: spend, label: Investimento, format: currency }
      - { key: impressions, label: Impressões, format: integer }
      - { key: reach, label: Alcance, format: integer }
      - { key: clicks, label: Cliques, format: integer }
      - { key: ctr, label: CTR, format: percent }
      - { key: cpc, label: CPC, format: currency }
      - { key: cpm, label: CPM, format: currency }
      - { key: purchases, label: Compras, format: integer }
      - { key: purchase_value, label: Receita, format: currency }
      - { key: cpa, label: CPA, format: currency }
      - { key: roas, label: ROAS, format: decimal }
  - name: compact
    columns:
      - { key: spend, label: Investimento, format: currency }
      - { key: purchases, label: Compras, format: integer }
      - { key: purchase_value, label: Receita, format: currency }
      - { key: roas, label: ROAS, format: decimal }
  - name: traffic
    columns:
      - { key: impressions, label: Impressões, format: integer }
      - { key: reach, label: Alcance, format: integer }
      - { key: clicks, label: Cliques, format: integer }
      - { key: ctr, label: CTR, format: percent }
      - { key: cpc, label: CPC, format: currency }
`

type layoutsFile struct {
	Layouts []*domain.ViewConfig `yaml:"layouts"`
}

// defaultLayouts materializa as visões embutidas indexadas por nome.
func defaultLayouts() (map[string]*domain.ViewConfig, []string, error) {
	var file layoutsFile
	if err := yaml.Unmarshal([]byte(defaultLayoutsYAML), &file); err != nil {
		return nil, nil, err
	}

	byName := make(map[string]*domain.ViewConfig, len(file.Layouts))
	names := make([]string, 0, len(file.Layouts))
	for _, layout := range file.Layouts {
		byName[layout.Name] = layout
		names = append(names, layout.Name)
	}

	return byName, names, nil
}
