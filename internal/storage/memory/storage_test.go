package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/tattoo-studio/internal/models"
	"github.com/magabrotheeeer/tattoo-studio/internal/storage"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestStorage(t *testing.T) (*Storage, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)}
	return New(WithClock(clock.Now)), clock
}

func newSeededStorage(t *testing.T) (*Storage, *fakeClock) {
	t.Helper()
	s, clock := newTestStorage(t)
	require.NoError(t, s.Seed(context.Background(), "password"))
	return s, clock
}

func salonNames(salons []models.TattooSalon) []string {
	names := make([]string, 0, len(salons))
	for _, s := range salons {
		names = append(names, s.Name)
	}
	return names
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	s, clock := newSeededStorage(t)

	user, err := s.GetUserByUsername(ctx, "testuser")
	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	plans, err := s.ListPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, []int{199, 349, 899}, []int{plans[0].Price, plans[1].Price, plans[2].Price})
	assert.True(t, plans[0].IsPopular)
	assert.True(t, plans[1].IsBest)

	subs, err := s.ListUserSubscriptions(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	assert.Equal(t, 2, subs[0].PlanID)
	assert.True(t, subs[0].IsActive)
	assert.False(t, subs[1].IsActive)

	convs, err := s.ListConversations(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, convs, 3)
	assert.Equal(t, 2, convs[0].UnreadCount)
	assert.Equal(t, 0, convs[1].UnreadCount)
	assert.True(t, convs[0].LastMessageAt.Equal(clock.Now()))
	assert.True(t, convs[2].LastMessageAt.Equal(clock.Now().Add(-72*time.Hour)))
	assert.Equal(t, "Art Fusion Tattoo", convs[2].Salon.Name)

	msgs, err := s.ListMessages(ctx, user.ID, 1)
	require.NoError(t, err)
	assert.Len(t, msgs, 5)
}

func TestListSalons_Filters(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeededStorage(t)

	tests := []struct {
		name   string
		filter models.SalonFilter
		want   []string
	}{
		{
			name:   "no filter",
			filter: models.SalonFilter{},
			want:   []string{"InkMasters Tattoo Studio", "Black Lotus Tattoo", "Art Fusion Tattoo"},
		},
		{
			name:   "city and style",
			filter: models.SalonFilter{City: "Львів", Style: "Японський"},
			want:   []string{"Black Lotus Tattoo"},
		},
		{
			name:   "all cities sentinel",
			filter: models.SalonFilter{City: models.AllCities},
			want:   []string{"InkMasters Tattoo Studio", "Black Lotus Tattoo", "Art Fusion Tattoo"},
		},
		{
			name:   "all styles sentinel with city",
			filter: models.SalonFilter{City: "Одеса", Style: models.AllStyles},
			want:   []string{"Art Fusion Tattoo"},
		},
		{
			name:   "style mismatch with city",
			filter: models.SalonFilter{City: "Київ", Style: "Японський"},
			want:   []string{},
		},
		{
			name:   "search by name is case insensitive",
			filter: models.SalonFilter{Search: "INK"},
			want:   []string{"InkMasters Tattoo Studio"},
		},
		{
			name:   "search by description",
			filter: models.SalonFilter{Search: "японському"},
			want:   []string{"Black Lotus Tattoo"},
		},
		{
			name:   "search by style with cyrillic case folding",
			filter: models.SalonFilter{Search: "АКВАРЕЛЬ"},
			want:   []string{"Art Fusion Tattoo"},
		},
		{
			name:   "search anded with city",
			filter: models.SalonFilter{City: "Київ", Search: "lotus"},
			want:   []string{},
		},
		{
			name:   "unknown city",
			filter: models.SalonFilter{City: "Харків"},
			want:   []string{},
		},
		{
			name:   "mixed case search matches every salon",
			filter: models.SalonFilter{Search: "tAtToO"},
			want:   []string{"InkMasters Tattoo Studio", "Black Lotus Tattoo", "Art Fusion Tattoo"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.ListSalons(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, salonNames(got))
		})
	}
}

func TestMatchSalon_UsesLoweredQuery(t *testing.T) {
	salon := models.TattooSalon{
		Name:        "InkMasters Tattoo Studio",
		Description: "Студія тату",
		Styles:      []string{"Реалізм"},
	}

	assert.True(t, matchSalon(salon, models.SalonFilter{Search: "INK"}, "ink"))
	assert.True(t, matchSalon(salon, models.SalonFilter{Search: "РЕАЛІЗМ"}, "реалізм"))
	assert.False(t, matchSalon(salon, models.SalonFilter{Search: "lotus"}, "lotus"))
	assert.True(t, matchSalon(salon, models.SalonFilter{}, ""))
}

func TestGetSalon_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeededStorage(t)

	salon, err := s.GetSalon(ctx, 1)
	require.NoError(t, err)
	salon.Styles[0] = "changed"

	again, err := s.GetSalon(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Традиційний", again.Styles[0])

	_, err = s.GetSalon(ctx, 9999)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateMessage_Bookkeeping(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStorage(t)

	_, err := s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 7, Content: "hi", IsFromUser: false})
	require.NoError(t, err)

	conv, err := s.GetConversation(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, conv.UnreadCount)
	assert.True(t, conv.LastMessageAt.Equal(clock.Now()))

	clock.Advance(time.Minute)
	_, err = s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 7, Content: "still there?", IsFromUser: false})
	require.NoError(t, err)

	conv, err = s.GetConversation(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, conv.UnreadCount)
	assert.True(t, conv.LastMessageAt.Equal(clock.Now()))

	msgs, err := s.ListMessages(ctx, 1, 7)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
	require.NoError(t, s.MarkConversationRead(ctx, 1, 7))

	conv, err = s.GetConversation(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, conv.UnreadCount)
}

func TestCreateMessage_FromUserDoesNotIncrement(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t)

	for range 3 {
		_, err := s.CreateMessage(ctx, models.Message{UserID: 2, SalonID: 3, Content: "hello", IsFromUser: true})
		require.NoError(t, err)
	}

	conv, err := s.GetConversation(ctx, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, conv.UnreadCount)
}

func TestCreateMessage_DefaultsTimestamp(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStorage(t)

	msg, err := s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 1, Content: "x", IsFromUser: true})
	require.NoError(t, err)
	assert.Equal(t, 1, msg.ID)
	assert.True(t, msg.Timestamp.Equal(clock.Now()))
}

func TestCreateMessage_ConcurrentSendsKeepOneConversation(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t)

	const senders = 64
	var wg sync.WaitGroup
	wg.Add(senders)
	for i := range senders {
		go func(i int) {
			defer wg.Done()
			_, err := s.CreateMessage(ctx, models.Message{
				UserID:     1,
				SalonID:    1,
				Content:    "ping",
				IsFromUser: i%2 == 0,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	convs, err := s.ListConversations(ctx, 1)
	require.Error(t, err, "salon 1 is not seeded, join must fail")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Nil(t, convs)

	s.mu.RLock()
	count := 0
	for _, c := range s.conversations {
		if c.UserID == 1 && c.SalonID == 1 {
			count++
		}
	}
	s.mu.RUnlock()
	assert.Equal(t, 1, count)

	conv, err := s.GetConversation(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, senders/2, conv.UnreadCount)

	msgs, err := s.ListMessages(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, msgs, senders)
}

func TestListMessages_OrderedByTimestamp(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t)

	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	t1, t2, t3 := base, base.Add(time.Minute), base.Add(2*time.Minute)

	for _, ts := range []time.Time{t3, t1, t2} {
		_, err := s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 2, Content: ts.String(), Timestamp: ts, IsFromUser: true})
		require.NoError(t, err)
	}
	// другая пара не попадает в выборку
	_, err := s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 3, Content: "other", Timestamp: base, IsFromUser: true})
	require.NoError(t, err)

	msgs, err := s.ListMessages(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.True(t, msgs[0].Timestamp.Equal(t1))
	assert.True(t, msgs[1].Timestamp.Equal(t2))
	assert.True(t, msgs[2].Timestamp.Equal(t3))
}

func TestListMessages_TiesBrokenByID(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t)

	ts := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	for _, content := range []string{"a", "b", "c"} {
		_, err := s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 1, Content: content, Timestamp: ts, IsFromUser: true})
		require.NoError(t, err)
	}

	msgs, err := s.ListMessages(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{msgs[0].ID, msgs[1].ID, msgs[2].ID})
}

func TestMarkConversationRead_NoConversation(t *testing.T) {
	s, _ := newTestStorage(t)
	assert.NoError(t, s.MarkConversationRead(context.Background(), 5, 5))
}

func TestCreateConversation_PairIsUnique(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStorage(t)

	_, err := s.CreateConversation(ctx, models.Conversation{UserID: 1, SalonID: 1, LastMessageAt: clock.Now()})
	require.NoError(t, err)

	_, err = s.CreateConversation(ctx, models.Conversation{UserID: 1, SalonID: 1, LastMessageAt: clock.Now()})
	assert.ErrorIs(t, err, storage.ErrConversationExists)

	_, err = s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 1, Content: "reply", IsFromUser: false})
	require.NoError(t, err)
	conv, err := s.GetConversation(ctx, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, conv.ID)
	assert.Equal(t, 1, conv.UnreadCount)
}

func TestSetConversationCounters(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStorage(t)

	conv, err := s.CreateConversation(ctx, models.Conversation{UserID: 1, SalonID: 1, LastMessageAt: clock.Now()})
	require.NoError(t, err)

	later := clock.Now().Add(time.Hour)
	updated, err := s.SetConversationCounters(ctx, conv.ID, later, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.UnreadCount)
	assert.True(t, updated.LastMessageAt.Equal(later))

	_, err = s.SetConversationCounters(ctx, conv.ID, later, -1)
	assert.Error(t, err)

	_, err = s.SetConversationCounters(ctx, 42, later, 0)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListConversations_MissingSalon(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeededStorage(t)

	_, err := s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 404, Content: "lost", IsFromUser: true})
	require.NoError(t, err)

	_, err = s.ListConversations(ctx, 1)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "salon 404")
}

func TestListConversations_UnknownUser(t *testing.T) {
	s, _ := newSeededStorage(t)

	convs, err := s.ListConversations(context.Background(), 77)
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestCreateUser_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t)

	u1, err := s.CreateUser(ctx, "ink", "h1")
	require.NoError(t, err)
	assert.Equal(t, 1, u1.ID)

	_, err = s.CreateUser(ctx, "ink", "h2")
	assert.ErrorIs(t, err, storage.ErrUsernameTaken)

	u2, err := s.CreateUser(ctx, "lotus", "h3")
	require.NoError(t, err)
	assert.Equal(t, 2, u2.ID, "failed insert must not consume an id")

	_, err = s.GetUser(ctx, 3)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSetUserSubscriptionActive(t *testing.T) {
	ctx := context.Background()
	s, _ := newSeededStorage(t)

	sub, err := s.SetUserSubscriptionActive(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, sub.IsActive)

	subs, err := s.ListUserSubscriptions(ctx, 1)
	require.NoError(t, err)
	assert.False(t, subs[0].IsActive)

	_, err = s.SetUserSubscriptionActive(ctx, 99, false)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIDsAreMonotonicPerKind(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStorage(t)

	p1, err := s.CreatePlan(ctx, models.SubscriptionPlan{Name: "a"})
	require.NoError(t, err)
	p2, err := s.CreatePlan(ctx, models.SubscriptionPlan{Name: "b"})
	require.NoError(t, err)
	salon, err := s.CreateSalon(ctx, models.TattooSalon{Name: "c", Styles: []string{"x"}})
	require.NoError(t, err)

	assert.Equal(t, 1, p1.ID)
	assert.Equal(t, 2, p2.ID)
	assert.Equal(t, 1, salon.ID)
}

func TestCancelledContext(t *testing.T) {
	s, _ := newTestStorage(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.ListPlans(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.CreateMessage(ctx, models.Message{UserID: 1, SalonID: 1, Content: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}
