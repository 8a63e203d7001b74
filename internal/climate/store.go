package climate

import "log"

// Store is the contract the in-memory store (and any future persistent store) must satisfy.
type Store interface {
	SaveReport(r *Report)
	LatestReport(city City) (*Report, error)
	SaveSnapshots(year int, snaps Snapshots)
	Snapshots(year int) (Snapshots, error)
}

// Refresh runs every city for year with a full report and saves the
// reports and the snapshots. Nothing is saved if any city fails.
func (s *Service) Refresh(st Store, cities []City, year int) error {
	var (
		snaps   Snapshots
		reports []*Report
	)
	for _, c := range cities {
		var (
			r   *Report
			err error
		)
		snaps, r, err = s.Run(c, year, c.Name, snaps)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	for _, r := range reports {
		st.SaveReport(r)
	}
	st.SaveSnapshots(year, snaps)
	log.Printf("INFO: refreshed %d cities for %d", len(cities), year)
	return nil
}

// SnapshotsFor returns the stored snapshots for year, running the batch
// and storing its snapshots when none are stored yet.
func (s *Service) SnapshotsFor(st Store, cities []City, year int) (Snapshots, error) {
	if snaps, err := st.Snapshots(year); err == nil {
		if snaps.Complete(cities) == nil {
			return snaps, nil
		}
	}

	snaps, _, err := s.RunAll(cities, year, "", nil)
	if err != nil {
		return nil, err
	}
	st.SaveSnapshots(year, snaps)
	return snaps, nil
}
