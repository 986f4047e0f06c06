package engagement

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhatlepham/inkwell/internal/content"
	"github.com/nhatlepham/inkwell/internal/platform/apperr"
)

// memoryStore is an in-memory Repository for service tests.
type memoryStore struct {
	views       map[string]int64
	viewUsers   map[string]map[string]bool
	likes       map[string]int64
	reactions   map[string]map[Kind]int64
	reactUsers  map[string]map[string]Kind
	failAll     bool
	failMessage string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		views:      make(map[string]int64),
		viewUsers:  make(map[string]map[string]bool),
		likes:      make(map[string]int64),
		reactions:  make(map[string]map[Kind]int64),
		reactUsers: make(map[string]map[string]Kind),
	}
}

func (store *memoryStore) fail() error {
	if store.failAll {
		return errors.New(store.failMessage)
	}
	return nil
}

func (store *memoryStore) Views(_ context.Context, path string) (int64, error) {
	if err := store.fail(); err != nil {
		return 0, err
	}
	return store.views[path], nil
}

func (store *memoryStore) RecordView(_ context.Context, path, visitorID string) (bool, error) {
	if err := store.fail(); err != nil {
		return false, err
	}
	if store.viewUsers[path] == nil {
		store.viewUsers[path] = make(map[string]bool)
	}
	if store.viewUsers[path][visitorID] {
		return false, nil
	}
	store.viewUsers[path][visitorID] = true
	store.views[path]++
	return true, nil
}

func (store *memoryStore) Likes(_ context.Context, path string) (int64, error) {
	if err := store.fail(); err != nil {
		return 0, err
	}
	return store.likes[path], nil
}

func (store *memoryStore) AddLike(_ context.Context, path string) error {
	if err := store.fail(); err != nil {
		return err
	}
	store.likes[path]++
	return nil
}

func (store *memoryStore) Reactions(_ context.Context, path string) (map[Kind]int64, error) {
	if err := store.fail(); err != nil {
		return nil, err
	}
	return store.reactions[path], nil
}

func (store *memoryStore) VisitorReaction(_ context.Context, path, visitorID string) (Kind, error) {
	if err := store.fail(); err != nil {
		return "", err
	}
	return store.reactUsers[path][visitorID], nil
}

func (store *memoryStore) SetReaction(_ context.Context, path, visitorID string, kind Kind) error {
	if err := store.fail(); err != nil {
		return err
	}
	if store.reactions[path] == nil {
		store.reactions[path] = make(map[Kind]int64)
	}
	if store.reactUsers[path] == nil {
		store.reactUsers[path] = make(map[string]Kind)
	}
	previous := store.reactUsers[path][visitorID]
	if previous == kind {
		return nil
	}
	if previous != "" {
		store.reactions[path][previous]--
	}
	store.reactions[path][kind]++
	store.reactUsers[path][visitorID] = kind
	return nil
}

// postSet is a minimal content.Repository over a fixed key set.
type postSet map[string]*content.Post

func newPostSet(keys ...string) postSet {
	set := make(postSet, len(keys))
	for _, key := range keys {
		set[key] = &content.Post{Key: key, URL: "/" + key}
	}
	return set
}

func (set postSet) ListAll() []*content.Post {
	posts := make([]*content.Post, 0, len(set))
	for _, post := range set {
		posts = append(posts, post)
	}
	return posts
}

func (set postSet) GetByPath(segments []string) (*content.Post, bool) {
	post, ok := set[strings.Join(segments, "/")]
	return post, ok
}

func (set postSet) GetManifest(string) (*content.SeriesManifest, bool) {
	return nil, false
}

func testService(store Repository) *Service {
	return NewService(store, newPostSet("dsa/part-1", "hello-world"), slog.New(slog.DiscardHandler))
}

/*
TestService_RecordView_DeduplicatesPerVisitor verifies that the first view
per visitor counts and repeats do not.
*/
func TestService_RecordView_DeduplicatesPerVisitor(t *testing.T) {
	service := testService(newMemoryStore())
	ctx := context.Background()

	// 1. First submission counts and the counter moves to 1.
	result, err := service.RecordView(ctx, "dsa/part-1", "visitor-1")
	require.NoError(t, err)
	assert.True(t, result.Counted)

	count, err := service.Views(ctx, "dsa/part-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	// 2. A repeat from the same visitor is acknowledged but not counted.
	result, err = service.RecordView(ctx, "dsa/part-1", "visitor-1")
	require.NoError(t, err)
	assert.False(t, result.Counted)

	count, err = service.Views(ctx, "dsa/part-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count.Count)

	// 3. A different visitor still counts.
	result, err = service.RecordView(ctx, "dsa/part-1", "visitor-2")
	require.NoError(t, err)
	assert.True(t, result.Counted)
}

/*
TestService_RecordView_RequiresVisitorID verifies the 400-class rejection
when the visitor identifier is missing.
*/
func TestService_RecordView_RequiresVisitorID(t *testing.T) {
	service := testService(newMemoryStore())

	_, err := service.RecordView(context.Background(), "dsa/part-1", "")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

/*
TestService_RecordView_UnknownPost verifies that engagement writes against
paths without a published post are rejected.
*/
func TestService_RecordView_UnknownPost(t *testing.T) {
	service := testService(newMemoryStore())

	_, err := service.RecordView(context.Background(), "no/such-post", "visitor-1")
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

/*
TestService_SetReaction_SwitchMovesCount verifies exclusive reactions: a
switch decrements the old kind and increments the new one.
*/
func TestService_SetReaction_SwitchMovesCount(t *testing.T) {
	service := testService(newMemoryStore())
	ctx := context.Background()

	// 1. Initial reaction.
	require.NoError(t, service.SetReaction(ctx, "dsa/part-1", "visitor-1", KindLike))

	summary, err := service.Reactions(ctx, "dsa/part-1", "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Counts[KindLike])
	require.NotNil(t, summary.CurrentUserReaction)
	assert.Equal(t, KindLike, *summary.CurrentUserReaction)

	// 2. Switching revokes the previous choice.
	require.NoError(t, service.SetReaction(ctx, "dsa/part-1", "visitor-1", KindLove))

	summary, err = service.Reactions(ctx, "dsa/part-1", "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Counts[KindLike])
	assert.Equal(t, int64(1), summary.Counts[KindLove])
	require.NotNil(t, summary.CurrentUserReaction)
	assert.Equal(t, KindLove, *summary.CurrentUserReaction)

	// 3. Re-submitting the active kind changes nothing.
	require.NoError(t, service.SetReaction(ctx, "dsa/part-1", "visitor-1", KindLove))

	summary, err = service.Reactions(ctx, "dsa/part-1", "visitor-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Counts[KindLove])
}

/*
TestService_SetReaction_RejectsUnknownKind verifies validation of the
reaction vocabulary.
*/
func TestService_SetReaction_RejectsUnknownKind(t *testing.T) {
	service := testService(newMemoryStore())

	err := service.SetReaction(context.Background(), "dsa/part-1", "visitor-1", Kind("angry"))
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

/*
TestService_Reads_DegradeToDefaults verifies that store outages on reads
surface zero values instead of errors.
*/
func TestService_Reads_DegradeToDefaults(t *testing.T) {
	store := newMemoryStore()
	store.failAll = true
	store.failMessage = "connection refused"
	service := testService(store)
	ctx := context.Background()

	views, err := service.Views(ctx, "dsa/part-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), views.Count)

	likes, err := service.Likes(ctx, "dsa/part-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), likes.Count)

	summary, err := service.Reactions(ctx, "dsa/part-1", "visitor-1")
	require.NoError(t, err)
	assert.Nil(t, summary.CurrentUserReaction)
	for _, kind := range Kinds() {
		assert.Equal(t, int64(0), summary.Counts[kind])
	}
}

/*
TestService_Writes_FailLoudly verifies that store outages on writes return a
service-unavailable error rather than degrading silently.
*/
func TestService_Writes_FailLoudly(t *testing.T) {
	store := newMemoryStore()
	store.failAll = true
	store.failMessage = "connection refused"
	service := testService(store)
	ctx := context.Background()

	_, err := service.RecordView(ctx, "dsa/part-1", "visitor-1")
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "SERVICE_UNAVAILABLE", appErr.Code)

	err = service.AddLike(ctx, "dsa/part-1")
	require.Error(t, err)

	err = service.SetReaction(ctx, "dsa/part-1", "visitor-1", KindFire)
	require.Error(t, err)
}

/*
TestService_AddLike_IncrementsUnconditionally verifies that likes carry no
per-visitor deduplication.
*/
func TestService_AddLike_IncrementsUnconditionally(t *testing.T) {
	service := testService(newMemoryStore())
	ctx := context.Background()

	require.NoError(t, service.AddLike(ctx, "hello-world"))
	require.NoError(t, service.AddLike(ctx, "hello-world"))

	count, err := service.Likes(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count.Count)
}
