package report

import (
	"cmp"
	"sort"
	"strconv"

	"godunn/domain/core"
	"godunn/domain/dataset"
	"godunn/domain/posthoc"
	"godunn/internal/analysis"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Options configures the driving routine.
type Options struct {
	// Alpha is the significance level, in (0, 1). The zero value means
	// "unset" and falls back to 0.05; an explicit alpha of exactly 0 is
	// not expressible (no test is significant at alpha 0 anyway).
	Alpha  float64
	Adjust analysis.AdjustMethod
	PartitionColumn string
	GroupColumn     string
	ValueColumn     string
	// CategoryOrder fixes the presentation order of group labels within each
	// partition; labels not listed sort after the listed ones.
	CategoryOrder []string
}

// DefaultOptions returns the conventional column names and test settings.
func DefaultOptions() Options {
	return Options{
		Alpha:           0.05,
		Adjust:          analysis.AdjustHolm,
		PartitionColumn: "Enzyme",
		GroupColumn:     "Treatment",
		ValueColumn:     "Viability",
	}
}

// ComputeLettersPerGroup runs the full pipeline independently within each
// partition of the dataset: group values by the group column, compute group
// means, run Dunn's test with the configured adjustment, and derive compact
// letter displays. Partitions with fewer than two non-empty groups are
// skipped; when no partition qualifies at all the result is
// core.ErrInsufficientGroups rather than a silently empty report.
// Partitions are independent, so they run concurrently.
func ComputeLettersPerGroup(table *dataset.Table, opts Options) (*posthoc.Report, error) {
	opts = withDefaults(opts)
	if err := opts.Adjust.Validate(); err != nil {
		return nil, err
	}

	names, parts, err := partitionTable(table, opts)
	if err != nil {
		return nil, err
	}

	results := make([][]groupResult, len(names))
	var eg errgroup.Group
	for i, name := range names {
		eg.Go(func() error {
			groups := parts[name]
			if len(groups) < 2 {
				return nil
			}
			rs, err := partitionLetters(groups, opts.Alpha, opts.Adjust)
			if err != nil {
				return err
			}
			results[i] = rs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	qualified := false
	for _, rs := range results {
		if rs != nil {
			qualified = true
			break
		}
	}
	if !qualified {
		return nil, core.ErrInsufficientGroups
	}

	rank := categoryRank(opts.CategoryOrder)

	var rows []posthoc.Row
	order := append([]string(nil), names...)
	sort.Strings(order)
	for _, name := range order {
		i := indexOf(names, name)
		rs := results[i]
		sort.Slice(rs, func(a, b int) bool {
			ra, rb := rank(rs[a].label), rank(rs[b].label)
			if ra != rb {
				return ra < rb
			}
			return labelLess(rs[a].label, rs[b].label)
		})
		for _, r := range rs {
			rows = append(rows, posthoc.Row{
				Partition: name,
				Group:     r.label,
				Letters:   r.letters,
				Mean:      r.mean,
				N:         r.n,
			})
		}
	}

	return &posthoc.Report{
		ID:          core.ReportID(core.NewID()),
		GeneratedAt: core.Now(),
		Alpha:       opts.Alpha,
		Adjust:      string(opts.Adjust),
		Rows:        rows,
	}, nil
}

// PairRow is one adjusted pairwise p-value within a partition.
type PairRow struct {
	Partition string
	GroupA    string
	GroupB    string
	PValue    float64
}

// ComputePairwise exposes the intermediate the letters are derived from:
// the adjusted pairwise p-value map of every partition, flattened to rows.
// Like ComputeLettersPerGroup, it returns core.ErrInsufficientGroups when
// no partition has two or more non-empty groups.
func ComputePairwise(table *dataset.Table, opts Options) ([]PairRow, error) {
	opts = withDefaults(opts)
	if err := opts.Adjust.Validate(); err != nil {
		return nil, err
	}

	names, parts, err := partitionTable(table, opts)
	if err != nil {
		return nil, err
	}

	sort.Strings(names)

	var rows []PairRow
	for _, name := range names {
		groups := parts[name]
		if len(groups) < 2 {
			continue
		}
		prs, err := partitionPairs(name, groups, opts.Adjust)
		if err != nil {
			return nil, err
		}
		rows = append(rows, prs...)
	}
	if rows == nil {
		return nil, core.ErrInsufficientGroups
	}
	return rows, nil
}

type groupResult struct {
	label   string
	letters string
	mean    float64
	n       int
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Alpha == 0 {
		opts.Alpha = def.Alpha
	}
	if opts.Adjust == "" {
		opts.Adjust = def.Adjust
	}
	if opts.PartitionColumn == "" {
		opts.PartitionColumn = def.PartitionColumn
	}
	if opts.GroupColumn == "" {
		opts.GroupColumn = def.GroupColumn
	}
	if opts.ValueColumn == "" {
		opts.ValueColumn = def.ValueColumn
	}
	return opts
}

// partitionTable splits the dataset into per-partition group value lists,
// preserving first-seen partition order. Value cells that do not parse as
// numbers are skipped, so a group with no parseable values never appears.
func partitionTable(table *dataset.Table, opts Options) ([]string, map[string]map[string][]float64, error) {
	if table.RowCount() == 0 {
		return nil, nil, core.ErrEmptyDataset
	}

	partCol, err := table.ColumnIndex(opts.PartitionColumn)
	if err != nil {
		return nil, nil, err
	}
	groupCol, err := table.ColumnIndex(opts.GroupColumn)
	if err != nil {
		return nil, nil, err
	}
	valueCol, err := table.ColumnIndex(opts.ValueColumn)
	if err != nil {
		return nil, nil, err
	}

	var names []string
	parts := make(map[string]map[string][]float64)
	for row := 0; row < table.RowCount(); row++ {
		part := table.Cell(row, partCol)
		group := table.Cell(row, groupCol)
		value, err := strconv.ParseFloat(table.Cell(row, valueCol), 64)
		if err != nil {
			continue
		}
		if _, ok := parts[part]; !ok {
			parts[part] = make(map[string][]float64)
			names = append(names, part)
		}
		parts[part][group] = append(parts[part][group], value)
	}

	return names, parts, nil
}

// partitionLetters runs means -> Dunn -> completeness check -> CLD for one
// partition. Group labels are keyed numerically whenever every label parses
// as a number, matching the canonical numeric pair order; otherwise labels
// are keyed as strings.
func partitionLetters(groups map[string][]float64, alpha float64, method analysis.AdjustMethod) ([]groupResult, error) {
	if fg, display, ok := numericKeys(groups); ok {
		return lettersFor(fg, display, alpha, method)
	}
	sg := make(map[string][]float64, len(groups))
	display := make(map[string]string, len(groups))
	for label, vals := range groups {
		sg[label] = vals
		display[label] = label
	}
	return lettersFor(sg, display, alpha, method)
}

func partitionPairs(partition string, groups map[string][]float64, method analysis.AdjustMethod) ([]PairRow, error) {
	if fg, display, ok := numericKeys(groups); ok {
		return pairsFor(partition, fg, display, method)
	}
	sg := make(map[string][]float64, len(groups))
	display := make(map[string]string, len(groups))
	for label, vals := range groups {
		sg[label] = vals
		display[label] = label
	}
	return pairsFor(partition, sg, display, method)
}

func numericKeys(groups map[string][]float64) (map[float64][]float64, map[float64]string, bool) {
	fg := make(map[float64][]float64, len(groups))
	display := make(map[float64]string, len(groups))
	for label, vals := range groups {
		f, err := strconv.ParseFloat(label, 64)
		if err != nil {
			return nil, nil, false
		}
		fg[f] = vals
		display[f] = label
	}
	return fg, display, true
}

func lettersFor[K cmp.Ordered](groups map[K][]float64, display map[K]string, alpha float64, method analysis.AdjustMethod) ([]groupResult, error) {
	means := make(map[K]float64, len(groups))
	for k, vals := range groups {
		m, err := stats.Mean(vals)
		if err != nil {
			return nil, err
		}
		means[k] = m
	}

	pv, err := analysis.DunnPosthoc(groups, method)
	if err != nil {
		return nil, err
	}
	if err := analysis.CompletePairs(means, pv); err != nil {
		return nil, err
	}

	letters := analysis.CLDLetters(means, pv, alpha)

	out := make([]groupResult, 0, len(letters))
	for k, ls := range letters {
		out = append(out, groupResult{
			label:   display[k],
			letters: ls,
			mean:    means[k],
			n:       len(groups[k]),
		})
	}
	return out, nil
}

func pairsFor[K cmp.Ordered](partition string, groups map[K][]float64, display map[K]string, method analysis.AdjustMethod) ([]PairRow, error) {
	pv, err := analysis.DunnPosthoc(groups, method)
	if err != nil {
		return nil, err
	}

	rows := make([]PairRow, 0, len(pv))
	for pair, p := range pv {
		rows = append(rows, PairRow{
			Partition: partition,
			GroupA:    display[pair.A],
			GroupB:    display[pair.B],
			PValue:    p,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].GroupA != rows[j].GroupA {
			return labelLess(rows[i].GroupA, rows[j].GroupA)
		}
		return labelLess(rows[i].GroupB, rows[j].GroupB)
	})
	return rows, nil
}

// categoryRank maps a group label to its position in the configured category
// order; unlisted labels sort after all listed ones.
func categoryRank(order []string) func(string) int {
	pos := make(map[string]int, len(order))
	for i, c := range order {
		pos[c] = i
	}
	return func(label string) int {
		if i, ok := pos[label]; ok {
			return i
		}
		return len(order)
	}
}

// labelLess compares labels numerically when both parse as numbers, so
// "10" sorts after "9".
func labelLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}

func indexOf(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}
