package repositories

import (
	"sync"

	"tag_approval_system/internal"
	"tag_approval_system/internal/db/models"
	"tag_approval_system/internal/store"
)

// requestRepository owns the "requests" document. Every read-modify-write
// happens under the mutex, so two racing resolutions of the same request
// cannot both pass the pending check.
type requestRepository struct {
	mu       sync.Mutex
	store    store.DocumentStore
	requests map[string]*models.TagRequest
}

type RequestRepository interface {
	GetOne(requesterID string) (*models.TagRequest, error)
	CreatePending(request *models.TagRequest) (*models.TagRequest, error)
	Approve(requesterID, approverID, roleID string) (*models.TagRequest, error)
	Reject(requesterID, approverID string) (*models.TagRequest, error)
	GetManyByStatus(status models.RequestStatus) ([]*models.TagRequest, error)
}

func NewRequestRepository(documentStore store.DocumentStore) (RequestRepository, error) {
	requests := map[string]*models.TagRequest{}

	if err := documentStore.Load(store.RequestsDocument, &requests); err != nil {
		return nil, err
	}

	return &requestRepository{
		store:    documentStore,
		requests: requests,
	}, nil
}

func (r *requestRepository) GetOne(requesterID string) (*models.TagRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[requesterID]
	if !ok {
		return nil, nil
	}

	return cloneRequest(request), nil
}

// CreatePending fills the requester's slot with a new pending request,
// overwriting a resolved one. A slot that is still pending is refused.
func (r *requestRepository) CreatePending(request *models.TagRequest) (*models.TagRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.requests[request.RequesterID]; ok && existing.IsPending() {
		return nil, internal.ErrAlreadyPending
	}

	created := cloneRequest(request)
	created.Status = models.RequestStatusPending
	created.DecidedBy = ""
	created.GrantedRoleID = ""

	r.requests[request.RequesterID] = created

	if err := r.save(); err != nil {
		return nil, err
	}

	return cloneRequest(created), nil
}

func (r *requestRepository) Approve(requesterID, approverID, roleID string) (*models.TagRequest, error) {
	return r.resolve(requesterID, func(request *models.TagRequest) {
		request.Status = models.RequestStatusApproved
		request.DecidedBy = approverID
		request.GrantedRoleID = roleID
	})
}

func (r *requestRepository) Reject(requesterID, approverID string) (*models.TagRequest, error) {
	return r.resolve(requesterID, func(request *models.TagRequest) {
		request.Status = models.RequestStatusRejected
		request.DecidedBy = approverID
	})
}

func (r *requestRepository) GetManyByStatus(status models.RequestStatus) ([]*models.TagRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	requests := make([]*models.TagRequest, 0)

	for _, request := range r.requests {
		if request.Status == status {
			requests = append(requests, cloneRequest(request))
		}
	}

	return requests, nil
}

func (r *requestRepository) resolve(requesterID string, mutate func(*models.TagRequest)) (*models.TagRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[requesterID]
	if !ok {
		return nil, internal.ErrRequestNotFound
	}

	if !request.IsPending() {
		return nil, internal.ErrNotPending
	}

	mutate(request)

	if err := r.save(); err != nil {
		return nil, err
	}

	return cloneRequest(request), nil
}

func (r *requestRepository) save() error {
	return r.store.Save(store.RequestsDocument, r.requests)
}

func cloneRequest(request *models.TagRequest) *models.TagRequest {
	clone := *request
	return &clone
}
