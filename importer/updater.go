package importer

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/autonomy-areas/config"
	"github.com/bitmark-inc/autonomy-areas/schema"
	"github.com/bitmark-inc/autonomy-areas/share/geojson"
	"github.com/bitmark-inc/autonomy-areas/store"
)

const maxConcurrentWrites = 16

// Updater - reconcile the stored areas of one dataset with its source
type Updater interface {
	Update(ctx context.Context, dataset config.Dataset) (bool, error)
}

type Options struct {
	DryRun       bool
	VersionCheck bool
	Logger       *log.Entry
}

type DatasetUpdater struct {
	store        store.Area
	dryRun       bool
	versionCheck bool
	logger       *log.Entry
}

// NewDatasetUpdater - s may be nil in dry-run mode
func NewDatasetUpdater(s store.Area, opts Options) *DatasetUpdater {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	return &DatasetUpdater{
		store:        s,
		dryRun:       opts.DryRun,
		versionCheck: opts.VersionCheck,
		logger:       logger,
	}
}

// Update - replace the stored areas of a dataset by the features of its
// geojson source. It returns false without error when the dataset is skipped
// because its version is already stored.
func (u *DatasetUpdater) Update(ctx context.Context, dataset config.Dataset) (bool, error) {
	logger := u.logger.WithField("prefix", dataset.ID)

	logger.Infof("Loading GeoJSON file %s...", dataset.Src)
	bounds, err := geojson.Load(dataset.Src)
	if err != nil {
		return false, err
	}
	logger.Infof("Loaded: %s", bounds.Name)

	areas, err := buildAreas(dataset, bounds)
	if err != nil {
		return false, err
	}

	if u.dryRun {
		logger.Infof("Would delete old areas with id==%s, version!=%s", dataset.ID, dataset.Version)
		for _, a := range areas {
			logger.Infof("Would save area %s", a.Name)
		}
		return true, nil
	}

	if u.versionCheck {
		logger.Info("Searching for non-stale area data in database...")
		exist, err := u.store.HasAreaVersion(ctx, dataset.Version)
		if err != nil {
			return false, fmt.Errorf("search version %s: %w", dataset.Version, err)
		}

		if exist {
			logger.Warnf("Type %s has non-stale entries in the database. This means you probably need to increment the version number, not changing anything for this dataset.", dataset.Type)
			return false, nil
		}
	}

	logger.Info("Deleting stale data...")
	deleted, err := u.store.DeleteDatasetAreas(ctx, dataset.ID)
	if err != nil {
		return false, fmt.Errorf("delete stale areas: %w", err)
	}
	logger.Infof("Deleted %d areas successfully, now writing new area data...", deleted)

	if err := u.save(ctx, dataset.ID, areas); err != nil {
		return false, err
	}

	logger.Infof("Successfully written %d new areas for this dataset", len(areas))
	return true, nil
}

// save inserts every area concurrently and waits for all of them. The first
// failure cancels the inserts that have not started yet.
func (u *DatasetUpdater) save(ctx context.Context, datasetID string, areas []schema.Area) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentWrites)

	for _, a := range areas {
		a := a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := u.store.AddArea(ctx, a); err != nil {
				return &StorageWriteError{
					DatasetID: datasetID,
					Area:      a.Name,
					Err:       err,
				}
			}
			return nil
		})
	}

	return g.Wait()
}

func buildAreas(dataset config.Dataset, bounds *geojson.FeatureCollection) ([]schema.Area, error) {
	property := dataset.NameProperty
	if property == "" {
		property = config.DefaultNameProperty
	}

	areas := make([]schema.Area, 0, len(bounds.Features))
	for i, f := range bounds.Features {
		name, err := f.Name(property)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		geometry, err := f.Shape()
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s) geometry: %w", i, name, err)
		}

		bbox, err := f.Bound()
		if err != nil {
			return nil, fmt.Errorf("feature %d (%s) geometry: %w", i, name, err)
		}

		areas = append(areas, schema.Area{
			Name:      name,
			Geometry:  geometry,
			BBox:      bbox,
			DatasetID: dataset.ID,
			Priority:  dataset.Priority,
			Version:   dataset.Version,
			Type:      dataset.Type,
		})
	}

	return areas, nil
}
