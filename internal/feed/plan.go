package feed

// defaultQueries cover a general-interest digest when the configuration
// provides neither sectors nor queries.
var defaultQueries = []string{"technology", "business"}

const (
	generalLabel = "General"
	sectorLabel  = "Sector" // for sectors configured without a name
)

// BuildPlan expands the configuration into the flat list of feeds to
// fetch this run. With no sectors, every region gets the default queries
// under the "General" label. With sectors, each sector is expanded in
// order across every region and each of its queries. Empty regions or an
// empty per-sector query list simply contribute nothing.
//
// The order is deterministic but carries no meaning downstream: the
// aggregator re-sorts everything by publish time.
func BuildPlan(regions []string, sectors []Sector, queries []string) []Source {
	var plan []Source

	if len(sectors) == 0 {
		if len(queries) == 0 {
			queries = defaultQueries
		}
		for _, region := range regions {
			for _, query := range queries {
				plan = append(plan, Source{
					Label:  generalLabel,
					Region: region,
					Query:  query,
					URL:    SearchURL(query, region),
				})
			}
		}
		return plan
	}

	for _, sector := range sectors {
		label := sector.Name
		if label == "" {
			label = sectorLabel
		}
		for _, region := range regions {
			for _, query := range sector.Queries {
				plan = append(plan, Source{
					Label:  label,
					Region: region,
					Query:  query,
					URL:    SearchURL(query, region),
				})
			}
		}
	}
	return plan
}
