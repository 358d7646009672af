package importer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/autonomy-areas/config"
)

// Summary - outcome of one run over all datasets
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// SanityCheck - every dataset needs an id and a source, and ids are unique
func SanityCheck(datasets []config.Dataset) error {
	ids := make(map[string]struct{}, len(datasets))
	for i, d := range datasets {
		if d.ID == "" {
			return fmt.Errorf("%w: dataset %d has no id", ErrConfigSanity, i)
		}
		if d.Src == "" {
			return fmt.Errorf("%w: dataset %s has no src", ErrConfigSanity, d.ID)
		}
		if _, ok := ids[d.ID]; ok {
			return fmt.Errorf("%w: you cannot have two datasets with the same id %s", ErrConfigSanity, d.ID)
		}
		ids[d.ID] = struct{}{}
	}
	return nil
}

// Run - update every dataset independently and wait for all of them. A
// failing dataset is only counted, except for a storage write error which
// stops the run and is returned.
func Run(ctx context.Context, u Updater, datasets []config.Dataset) (Summary, error) {
	summary := Summary{Total: len(datasets)}

	if err := SanityCheck(datasets); err != nil {
		return summary, err
	}

	results := make([]bool, len(datasets))
	g, ctx := errgroup.WithContext(ctx)
	for i, d := range datasets {
		i, d := i, d
		g.Go(func() error {
			ok, err := u.Update(ctx, d)
			if err != nil {
				if IsFatal(err) {
					return err
				}
				log.WithFields(log.Fields{
					"prefix": d.ID,
					"error":  err,
				}).Error("dataset update failed")
			}
			results[i] = ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}

	for _, ok := range results {
		if ok {
			summary.Succeeded++
		}
	}
	summary.Failed = summary.Total - summary.Succeeded

	return summary, nil
}
