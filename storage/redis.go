package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"taalimflow/config"
	"taalimflow/models"
)

const (
	contactKeyPrefix = "contact_submission:"
	demoKeyPrefix    = "demo_request:"
	contactIDsKey    = "contact_submission_ids"
	demoIDsKey       = "demo_request_ids"
	contactCounter   = "next_contact_id"
	demoCounter      = "next_demo_id"
)

// RedisStorage keeps each submission under its own key plus a list of
// known ids per type. Ids come from INCR, so concurrent creates cannot
// collide.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(cfg config.RedisConfig) *RedisStorage {
	return &RedisStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

func (rs *RedisStorage) Close() error {
	return rs.client.Close()
}

func (rs *RedisStorage) nextID(ctx context.Context, counterKey string) (int, error) {
	id, err := rs.client.Incr(ctx, counterKey).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment %s: %w", counterKey, err)
	}
	return int(id), nil
}

func (rs *RedisStorage) setJSON(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rs.client.Set(ctx, key, raw, 0).Err()
}

// Contact submissions

func (rs *RedisStorage) CreateContactSubmission(in models.InsertContactSubmission) (*models.ContactSubmission, error) {
	ctx := context.Background()

	id, err := rs.nextID(ctx, contactCounter)
	if err != nil {
		return nil, err
	}

	submission := models.ContactSubmission{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		SchoolName:  in.SchoolName,
		Message:     in.Message,
		SubmittedAt: time.Now().UTC(),
		IsRead:      "false",
		Status:      models.StatusNew,
	}

	if err := rs.setJSON(ctx, contactKeyPrefix+strconv.Itoa(id), submission); err != nil {
		return nil, err
	}
	if err := rs.client.RPush(ctx, contactIDsKey, id).Err(); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (rs *RedisStorage) GetAllContactSubmissions() ([]models.ContactSubmission, error) {
	ctx := context.Background()

	ids, err := rs.client.LRange(ctx, contactIDsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	submissions := []models.ContactSubmission{}
	if len(ids) == 0 {
		return submissions, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = contactKeyPrefix + id
	}
	values, err := rs.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue // id list entry with no backing key
		}
		var submission models.ContactSubmission
		if err := json.Unmarshal([]byte(raw), &submission); err != nil {
			continue
		}
		submissions = append(submissions, submission)
	}

	sort.Slice(submissions, func(i, j int) bool {
		return submissions[i].SubmittedAt.After(submissions[j].SubmittedAt)
	})
	return submissions, nil
}

func (rs *RedisStorage) getContactSubmission(ctx context.Context, id int) (*models.ContactSubmission, error) {
	raw, err := rs.client.Get(ctx, contactKeyPrefix+strconv.Itoa(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var submission models.ContactSubmission
	if err := json.Unmarshal(raw, &submission); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (rs *RedisStorage) MarkContactSubmissionAsRead(id int) error {
	ctx := context.Background()

	submission, err := rs.getContactSubmission(ctx, id)
	if err != nil {
		return err
	}
	submission.IsRead = "true"
	return rs.setJSON(ctx, contactKeyPrefix+strconv.Itoa(id), submission)
}

func (rs *RedisStorage) UpdateContactSubmissionStatus(id int, status string) error {
	ctx := context.Background()

	submission, err := rs.getContactSubmission(ctx, id)
	if err != nil {
		return err
	}
	submission.Status = status
	return rs.setJSON(ctx, contactKeyPrefix+strconv.Itoa(id), submission)
}

func (rs *RedisStorage) DeleteContactSubmission(id int) error {
	ctx := context.Background()

	deleted, err := rs.client.Del(ctx, contactKeyPrefix+strconv.Itoa(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return rs.client.LRem(ctx, contactIDsKey, 0, id).Err()
}

// Demo requests

func (rs *RedisStorage) CreateDemoRequest(in models.InsertDemoRequest) (*models.DemoRequest, error) {
	ctx := context.Background()

	id, err := rs.nextID(ctx, demoCounter)
	if err != nil {
		return nil, err
	}

	request := models.DemoRequest{
		ID:               id,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		SchoolName:       in.SchoolName,
		SchoolType:       in.SchoolType,
		NumberOfStudents: in.NumberOfStudents,
		SubmittedAt:      time.Now().UTC(),
		IsRead:           "false",
		Status:           models.StatusNew,
	}

	if err := rs.setJSON(ctx, demoKeyPrefix+strconv.Itoa(id), request); err != nil {
		return nil, err
	}
	if err := rs.client.RPush(ctx, demoIDsKey, id).Err(); err != nil {
		return nil, err
	}
	return &request, nil
}

func (rs *RedisStorage) GetAllDemoRequests() ([]models.DemoRequest, error) {
	ctx := context.Background()

	ids, err := rs.client.LRange(ctx, demoIDsKey, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	requests := []models.DemoRequest{}
	if len(ids) == 0 {
		return requests, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = demoKeyPrefix + id
	}
	values, err := rs.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var request models.DemoRequest
		if err := json.Unmarshal([]byte(raw), &request); err != nil {
			continue
		}
		requests = append(requests, request)
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].SubmittedAt.After(requests[j].SubmittedAt)
	})
	return requests, nil
}

func (rs *RedisStorage) getDemoRequest(ctx context.Context, id int) (*models.DemoRequest, error) {
	raw, err := rs.client.Get(ctx, demoKeyPrefix+strconv.Itoa(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var request models.DemoRequest
	if err := json.Unmarshal(raw, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (rs *RedisStorage) MarkDemoRequestAsRead(id int) error {
	ctx := context.Background()

	request, err := rs.getDemoRequest(ctx, id)
	if err != nil {
		return err
	}
	request.IsRead = "true"
	return rs.setJSON(ctx, demoKeyPrefix+strconv.Itoa(id), request)
}

func (rs *RedisStorage) UpdateDemoRequestStatus(id int, status string) error {
	ctx := context.Background()

	request, err := rs.getDemoRequest(ctx, id)
	if err != nil {
		return err
	}
	request.Status = status
	return rs.setJSON(ctx, demoKeyPrefix+strconv.Itoa(id), request)
}

func (rs *RedisStorage) DeleteDemoRequest(id int) error {
	ctx := context.Background()

	deleted, err := rs.client.Del(ctx, demoKeyPrefix+strconv.Itoa(id)).Result()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return rs.client.LRem(ctx, demoIDsKey, 0, id).Err()
}
