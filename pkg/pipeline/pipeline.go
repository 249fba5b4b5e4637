// Copyright (c) 2025, the cylindo-feed authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package pipeline

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pimtools/cylindo-feed/pkg/catalog"
	"github.com/pimtools/cylindo-feed/pkg/combiner"
	cferrors "github.com/pimtools/cylindo-feed/pkg/errors"
	"github.com/pimtools/cylindo-feed/pkg/frameurl"
	"github.com/pimtools/cylindo-feed/pkg/header"
	"github.com/pimtools/cylindo-feed/pkg/matcher"
)

// ConfigurationSource provides product feature sets. Satisfied by
// cylindo.Client; stubbed in tests.
type ConfigurationSource interface {
	GetConfiguration(ctx context.Context, productCode string) (*catalog.ProductConfiguration, error)
}

// FeedGenerator orchestrates combination expansion, URL construction, and
// catalog matching into a complete feed.
type FeedGenerator struct {
	Source  ConfigurationSource
	Matcher *matcher.Matcher
	Records []catalog.Record
	Config  Config
	Version string
	Logger  *slog.Logger
}

// productResult holds the rows and counters produced for one product.
type productResult struct {
	rows             []Row
	configWarnings   int
	validationErrors int
	failed           bool
}

// Run generates the feed for the given products, in the given order.
//
// The row order is an external contract: products in selection order, then
// combinations in generator order, then angles ascending. With Parallelism
// enabled products are processed concurrently and re-assembled into that
// canonical order before the feed is returned.
//
// Per-product failures (fetch errors, stale exclusive groups) never abort
// the run; they are logged, counted in the summary, and the remaining
// products are still processed.
func (g *FeedGenerator) Run(ctx context.Context, products []string) (*Feed, error) {
	if g.Logger == nil {
		g.Logger = slog.Default()
	}
	if g.Matcher == nil {
		g.Matcher = matcher.New()
	}
	if err := g.Config.Params.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() {
		generateDuration.Observe(time.Since(start).Seconds())
	}()

	angles, droppedAngles := validAngles(g.Config.Angles, g.Logger)

	results := make([]productResult, len(products))
	if g.Config.Parallelism > 1 {
		eg, gctx := errgroup.WithContext(ctx)
		eg.SetLimit(g.Config.Parallelism)
		for i, code := range products {
			i, code := i, code
			eg.Go(func() error {
				results[i] = g.processProduct(gctx, code, angles)
				return gctx.Err()
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, cferrors.Wrap(cferrors.ErrCodeInternal, "feed generation interrupted", err)
		}
	} else {
		for i, code := range products {
			if err := ctx.Err(); err != nil {
				return nil, cferrors.Wrap(cferrors.ErrCodeInternal, "feed generation interrupted", err)
			}
			results[i] = g.processProduct(ctx, code, angles)
		}
	}

	feed := &Feed{}
	feed.Init(header.KindImageFeed, FeedAPIVersion, g.Version)
	feed.Summary.ProductsTotal = len(products)
	feed.Summary.ValidationErrors = droppedAngles

	for _, res := range results {
		feed.Rows = append(feed.Rows, res.rows...)
		feed.Summary.ConfigWarnings += res.configWarnings
		feed.Summary.ValidationErrors += res.validationErrors
		if res.failed {
			feed.Summary.ProductsFailed++
		}
	}
	for _, row := range feed.Rows {
		feed.Summary.TotalRows++
		switch {
		case row.ItemNo == "":
			feed.Summary.Unresolved++
			rowsGenerated.WithLabelValues(resolutionUnresolved).Inc()
		case row.Ambiguous:
			feed.Summary.Ambiguous++
			rowsGenerated.WithLabelValues(resolutionAmbiguous).Inc()
		default:
			rowsGenerated.WithLabelValues(resolutionMatched).Inc()
		}
	}

	g.Logger.Info("feed generation complete",
		"products", feed.Summary.ProductsTotal,
		"rows", feed.Summary.TotalRows,
		"unresolved", feed.Summary.Unresolved,
		"ambiguous", feed.Summary.Ambiguous,
		"config_warnings", feed.Summary.ConfigWarnings,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return feed, nil
}

// processProduct produces the rows for a single product. Never fails the
// run: fetch errors mark the product failed and yield zero rows.
func (g *FeedGenerator) processProduct(ctx context.Context, productCode string, angles []int) productResult {
	var res productResult

	cfg, err := g.Source.GetConfiguration(ctx, productCode)
	if err != nil {
		g.Logger.Error("failed to fetch product configuration, skipping product",
			"product", productCode, "error", err)
		res.failed = true
		return res
	}

	gen := combiner.Generate(cfg, g.Config.Selected, g.Config.Groups)
	for _, warn := range gen.Warnings {
		if cferrors.IsCode(warn, cferrors.ErrCodeConfiguration) {
			res.configWarnings++
			configWarnings.Inc()
		} else {
			res.validationErrors++
		}
	}

	for _, combo := range gen.Combinations {
		in := g.matchInput(cfg, combo)
		match := g.Matcher.Find(in, g.Records)

		for _, angle := range angles {
			u, err := frameurl.Build(g.Config.Params, productCode, angle, combo)
			if err != nil {
				// Angles are pre-validated; a failure here means bad params.
				g.Logger.Error("failed to build frame url",
					"product", productCode, "angle", angle, "error", err)
				res.validationErrors++
				continue
			}
			row := Row{
				ProductCode: productCode,
				Angle:       angle,
				URL:         u,
				Combination: combo,
			}
			if match != nil {
				row.ItemNo = match.Record.ItemNo
				row.Ambiguous = match.Ambiguous
				row.Candidates = match.Candidates
			}
			res.rows = append(res.rows, row)
		}
	}

	g.Logger.Debug("processed product",
		"product", productCode,
		"combinations", len(gen.Combinations),
		"rows", len(res.rows),
	)
	return res
}

// matchInput derives the matcher input from a combination: the color-defining
// feature is the exclusive-group member present in the combination, falling
// back to the first selection.
func (g *FeedGenerator) matchInput(cfg *catalog.ProductConfiguration, combo catalog.Combination) matcher.Input {
	in := matcher.Input{ProductCode: cfg.ProductCode}

	sel, ok := colorSelection(combo, g.Config.Groups)
	if !ok {
		return in
	}
	in.ColorCode = sel.OptionCode
	if f, ok := cfg.Feature(sel.FeatureCode); ok {
		if o, ok := f.Option(sel.OptionCode); ok {
			in.ColorName = o.Name
		}
	}
	return in
}

// colorSelection picks the combination's material/color-defining selection.
func colorSelection(combo catalog.Combination, groups []combiner.ExclusiveGroup) (catalog.Selection, bool) {
	for _, s := range combo {
		for _, grp := range groups {
			if grp.Contains(s.FeatureCode) {
				return s, true
			}
		}
	}
	if len(combo) > 0 {
		return combo[0], true
	}
	return catalog.Selection{}, false
}

// validAngles filters the configured angles to the accepted range and sorts
// them ascending. Invalid angles are dropped individually, not fatally.
func validAngles(angles []int, logger *slog.Logger) (valid []int, dropped int) {
	for _, a := range angles {
		if err := frameurl.ValidateAngle(a); err != nil {
			logger.Warn("dropping out-of-range frame angle", "angle", a)
			dropped++
			continue
		}
		valid = append(valid, a)
	}
	sort.Ints(valid)
	return valid, dropped
}
