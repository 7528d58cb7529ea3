package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/couchcryptid/incident-viz/internal/aggregate"
	"github.com/couchcryptid/incident-viz/internal/domain"
)

// RenderSummaryMarkdown writes the run summary: dataset totals, per-category
// breakdowns, and links to the rendered artifacts.
func RenderSummaryMarkdown(w io.Writer, ds domain.Dataset, pivot aggregate.Pivot, opts Options) error {
	summary := aggregate.Summarize(ds.Incidents)

	md := markdown.NewMarkdown(w)
	md.H1(fmt.Sprintf("Incident Dataset Summary - %s", opts.Region))
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Generated", opts.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Source rows", strconv.Itoa(ds.SourceRows)},
			{"Rows rejected", strconv.Itoa(ds.Rejected)},
			{"Records rendered", strconv.Itoa(summary.Count)},
			{"Sampled", strconv.FormatBool(ds.Sampled)},
			{"Year range", fmt.Sprintf("%d - %d", summary.MinYear, summary.MaxYear)},
			{"Total killed", fmt.Sprintf("%.0f", summary.Killed)},
			{"Total wounded", fmt.Sprintf("%.0f", summary.Wounded)},
			{"Total casualties", fmt.Sprintf("%.0f", summary.Casualties)},
		},
	})
	md.PlainText("")

	writeAttackTypeTable(md, pivot)
	writeTargetTypeTable(md, ds.Incidents)

	md.H2("Artifacts")
	md.BulletList(
		"[Attack types over time (interactive)](attack_types.html)",
		"[Casualties by target type (interactive)](casualties.html)",
		"![Incidents per year](attack_trend.png)",
		"![Casualties scatter](casualties_scatter.png)",
	)

	if err := md.Build(); err != nil {
		return fmt.Errorf("render summary markdown: %w", err)
	}
	return nil
}

func writeAttackTypeTable(md *markdown.Markdown, pivot aggregate.Pivot) {
	md.H2("Incidents by Attack Type")

	type typeCount struct {
		name  string
		count int
	}
	counts := make([]typeCount, len(pivot.AttackTypes))
	for j, at := range pivot.AttackTypes {
		counts[j].name = at
		for i := range pivot.Counts {
			counts[j].count += pivot.Counts[i][j]
		}
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].count > counts[j].count })

	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.name, strconv.Itoa(c.count)}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Attack Type", "Incidents"},
		Rows:   rows,
	})
	md.PlainText("")
}

func writeTargetTypeTable(md *markdown.Markdown, incidents []domain.Incident) {
	md.H2("Casualties by Target Type")

	type totals struct {
		count   int
		killed  float64
		wounded float64
	}
	byTarget := map[string]*totals{}
	for i := range incidents {
		inc := &incidents[i]
		t := byTarget[inc.TargetType]
		if t == nil {
			t = &totals{}
			byTarget[inc.TargetType] = t
		}
		t.count++
		t.killed += inc.Killed
		t.wounded += inc.Wounded
	}

	names := make([]string, 0, len(byTarget))
	for name := range byTarget {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := byTarget[names[i]], byTarget[names[j]]
		if a.killed+a.wounded != b.killed+b.wounded {
			return a.killed+a.wounded > b.killed+b.wounded
		}
		return names[i] < names[j]
	})

	rows := make([][]string, len(names))
	for i, name := range names {
		t := byTarget[name]
		rows[i] = []string{
			name,
			strconv.Itoa(t.count),
			fmt.Sprintf("%.0f", t.killed),
			fmt.Sprintf("%.0f", t.wounded),
			fmt.Sprintf("%.0f", t.killed+t.wounded),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Target Type", "Incidents", "Killed", "Wounded", "Casualties"},
		Rows:   rows,
	})
	md.PlainText("")
}
