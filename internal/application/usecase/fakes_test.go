package usecase_test

import (
	"context"

	"github.com/jhoicas/Empleos-api/internal/domain"
	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	"github.com/jhoicas/Empleos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	byUserID map[int64]*entity.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byUserID: make(map[int64]*entity.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, company *entity.Company) (int64, error) {
	company.ID = int64(len(f.byUserID) + 1)
	f.byUserID[company.UserID] = company
	return company.ID, nil
}

func (f *fakeCompanyRepo) GetByUserID(_ context.Context, userID int64) (*entity.Company, error) {
	return f.byUserID[userID], nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, userID int64, patch repository.CompanyPatch) error {
	c, ok := f.byUserID[userID]
	if !ok {
		return domain.ErrNoCompany
	}
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.NIT != nil {
		c.NIT = patch.NIT
	}
	if patch.Website != nil {
		c.Website = patch.Website
	}
	if patch.Location != nil {
		c.Location = patch.Location
	}
	return nil
}

func (f *fakeCompanyRepo) SetLogoURL(_ context.Context, userID int64, url string) error {
	c, ok := f.byUserID[userID]
	if !ok {
		return domain.ErrNoCompany
	}
	c.LogoURL = &url
	return nil
}

type fakeJobRepo struct {
	nextID  int64
	jobs    map[int64]*entity.Job
	owners  map[int64]int64 // jobID → userID dueño
	lastQ   string          // último término pasado a Search
	updated map[int64]repository.JobPatch
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{
		nextID:  1,
		jobs:    make(map[int64]*entity.Job),
		owners:  make(map[int64]int64),
		updated: make(map[int64]repository.JobPatch),
	}
}

func (f *fakeJobRepo) add(job *entity.Job, ownerUserID int64) int64 {
	id := f.nextID
	f.nextID++
	job.ID = id
	f.jobs[id] = job
	f.owners[id] = ownerUserID
	return id
}

func (f *fakeJobRepo) Create(_ context.Context, job *entity.Job) (int64, error) {
	return f.add(job, 0), nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id int64) (*entity.JobListing, error) {
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	return listingFromJob(j), nil
}

func (f *fakeJobRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeJobRepo) List(_ context.Context, limit, offset int) ([]*entity.JobListing, error) {
	out := make([]*entity.JobListing, 0, len(f.jobs))
	for _, j := range f.jobs {
		out = append(out, listingFromJob(j))
	}
	return out, nil
}

func (f *fakeJobRepo) Search(_ context.Context, q string, limit, offset int) ([]*entity.JobListing, error) {
	f.lastQ = q
	return nil, nil
}

func (f *fakeJobRepo) ListByOwner(_ context.Context, userID int64) ([]*entity.Job, error) {
	var out []*entity.Job
	for id, owner := range f.owners {
		if owner == userID {
			out = append(out, f.jobs[id])
		}
	}
	return out, nil
}

func (f *fakeJobRepo) ResolveOwned(_ context.Context, jobID, userID int64) (*entity.Job, error) {
	j, ok := f.jobs[jobID]
	if !ok || f.owners[jobID] != userID {
		return nil, nil
	}
	return j, nil
}

func (f *fakeJobRepo) Update(_ context.Context, id int64, patch repository.JobPatch) error {
	if _, ok := f.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	f.updated[id] = patch
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.jobs[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.jobs, id)
	delete(f.owners, id)
	return nil
}

type fakeApplicationRepo struct {
	nextID  int64
	applied map[[2]int64]int64 // (jobID, userID) → applicationID
	list    []*entity.ApplicationSummary
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{nextID: 1, applied: make(map[[2]int64]int64)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, jobID, userID int64) (int64, error) {
	key := [2]int64{jobID, userID}
	if _, ok := f.applied[key]; ok {
		return 0, domain.ErrAlreadyApplied
	}
	id := f.nextID
	f.nextID++
	f.applied[key] = id
	return id, nil
}

func (f *fakeApplicationRepo) ExistsByJobAndUser(_ context.Context, jobID, userID int64) (bool, error) {
	_, ok := f.applied[[2]int64{jobID, userID}]
	return ok, nil
}

func (f *fakeApplicationRepo) ListByUser(_ context.Context, userID int64) ([]*entity.ApplicationSummary, error) {
	return f.list, nil
}

func listingFromJob(j *entity.Job) *entity.JobListing {
	return &entity.JobListing{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		Title:       j.Title,
		Description: j.Description,
		Salary:      j.Salary,
		CreatedAt:   j.CreatedAt,
	}
}
