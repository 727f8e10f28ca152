package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"lifesync/internal/models/db_models"
	"lifesync/internal/repositories"
	"lifesync/pkg/stripe"
)

// Hand-rolled fakes; the repository interfaces are small enough that a
// mocking framework would be more code than this.

type fakeAttempts struct {
	blocked map[string]bool
	fails   map[string]int
	resets  map[string]int
}

func newFakeAttempts() *fakeAttempts {
	return &fakeAttempts{
		blocked: make(map[string]bool),
		fails:   make(map[string]int),
		resets:  make(map[string]int),
	}
}

func (f *fakeAttempts) Allow(key string) bool { return !f.blocked[key] }
func (f *fakeAttempts) Fail(key string)       { f.fails[key]++ }
func (f *fakeAttempts) Reset(key string)      { f.resets[key]++ }

type fakeRewardRepo struct {
	rewards map[string]*db_models.Reward
	findErr error
	saveErr error
}

func newFakeRewardRepo() *fakeRewardRepo {
	return &fakeRewardRepo{rewards: make(map[string]*db_models.Reward)}
}

func (f *fakeRewardRepo) FindByUserID(ctx context.Context, userID string) (*db_models.Reward, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.rewards[userID], nil
}

func (f *fakeRewardRepo) GetOrCreate(ctx context.Context, userID uuid.UUID) (*db_models.Reward, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if r, ok := f.rewards[userID.String()]; ok {
		return r, nil
	}
	r := &db_models.Reward{
		UserID:       userID,
		Level:        1,
		Achievements: []byte("[]"),
	}
	r.ID = uuid.New()
	f.rewards[userID.String()] = r
	return r, nil
}

func (f *fakeRewardRepo) Update(ctx context.Context, reward *db_models.Reward) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.rewards[reward.UserID.String()] = reward
	return nil
}

type fakeGoalRepo struct {
	goals     map[string]*db_models.Goal
	insertErr error
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*db_models.Goal)}
}

func (f *fakeGoalRepo) Insert(ctx context.Context, goal *db_models.Goal) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if goal.ID == uuid.Nil {
		goal.ID = uuid.New()
	}
	f.goals[goal.ID.String()] = goal
	return nil
}

func (f *fakeGoalRepo) FindByID(ctx context.Context, id string) (*db_models.Goal, error) {
	return f.goals[id], nil
}

func (f *fakeGoalRepo) ListByUser(ctx context.Context, userID string) ([]db_models.Goal, error) {
	var out []db_models.Goal
	for _, g := range f.goals {
		if g.UserID.String() == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (f *fakeGoalRepo) Update(ctx context.Context, goal *db_models.Goal) error {
	f.goals[goal.ID.String()] = goal
	return nil
}

func (f *fakeGoalRepo) MarkCompleted(ctx context.Context, id string) (bool, error) {
	g, ok := f.goals[id]
	if !ok || g.Completed {
		return false, nil
	}
	g.Completed = true
	return true, nil
}

type fakeMinigameRepo struct {
	games     []*db_models.Minigame
	insertErr error
}

func (f *fakeMinigameRepo) Insert(ctx context.Context, game *db_models.Minigame) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if game.ID == uuid.Nil {
		game.ID = uuid.New()
	}
	f.games = append(f.games, game)
	return nil
}

func (f *fakeMinigameRepo) ListByUser(ctx context.Context, userID string) ([]db_models.Minigame, error) {
	var out []db_models.Minigame
	for _, g := range f.games {
		if g.UserID.String() == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

type awardCall struct {
	userID uuid.UUID
	points int64
	source string
}

// stubRewards records AwardPoints calls for services that delegate to the
// reward service.
type stubRewards struct {
	calls    []awardCall
	awardErr error
}

func (s *stubRewards) GetRewards(ctx context.Context, userID string) (*db_models.Reward, error) {
	return nil, errors.New("not implemented")
}

func (s *stubRewards) AwardPoints(ctx context.Context, userID uuid.UUID, points int64, source string) (*db_models.Reward, error) {
	s.calls = append(s.calls, awardCall{userID: userID, points: points, source: source})
	if s.awardErr != nil {
		return nil, s.awardErr
	}
	return &db_models.Reward{UserID: userID, TotalPoints: points}, nil
}

type fakeNewsletterRepo struct {
	entries   map[string]*db_models.Newsletter
	insertErr error
}

func newFakeNewsletterRepo() *fakeNewsletterRepo {
	return &fakeNewsletterRepo{entries: make(map[string]*db_models.Newsletter)}
}

func (f *fakeNewsletterRepo) Insert(ctx context.Context, entry *db_models.Newsletter) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.entries[entry.Email] = entry
	return nil
}

func (f *fakeNewsletterRepo) FindByEmail(ctx context.Context, email string) (*db_models.Newsletter, error) {
	return f.entries[email], nil
}

func (f *fakeNewsletterRepo) SetSubscribed(ctx context.Context, email string, subscribed bool) error {
	if e, ok := f.entries[email]; ok {
		e.Subscribed = subscribed
	}
	return nil
}

type fakeMail struct {
	contactCalls []*db_models.Contact
	welcomeCalls []string
	err          error
}

func (f *fakeMail) SendContactNotification(contact *db_models.Contact) error {
	f.contactCalls = append(f.contactCalls, contact)
	return f.err
}

func (f *fakeMail) SendNewsletterWelcome(email string) error {
	f.welcomeCalls = append(f.welcomeCalls, email)
	return f.err
}

type fakeUserRepo struct {
	users     map[string]*db_models.User
	insertErr error
}

func newFakeUserRepo(users ...*db_models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*db_models.User)}
	for _, u := range users {
		f.users[u.ID.String()] = u
	}
	return f
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID.String()] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByStripeCustomerID(ctx context.Context, customerID string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.StripeCustomerID != nil && *u.StripeCustomerID == customerID {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) SetStripeCustomerID(ctx context.Context, id string, customerID string) error {
	if u, ok := f.users[id]; ok {
		u.StripeCustomerID = &customerID
	}
	return nil
}

type fakeSubRepo struct {
	subs      []*db_models.Subscription
	insertErr error
}

func (f *fakeSubRepo) Insert(ctx context.Context, sub *db_models.Subscription) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.subs = append(f.subs, sub)
	return nil
}

func (f *fakeSubRepo) FindByUserID(ctx context.Context, userID string) (*db_models.Subscription, error) {
	for _, s := range f.subs {
		if s.UserID.String() == userID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubRepo) FindByStripeSubID(ctx context.Context, stripeSubID string) (*db_models.Subscription, error) {
	for _, s := range f.subs {
		if s.StripeSubscriptionID != nil && *s.StripeSubscriptionID == stripeSubID {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeSubRepo) Update(ctx context.Context, sub *db_models.Subscription) error {
	for i, s := range f.subs {
		if s.ID == sub.ID {
			f.subs[i] = sub
			return nil
		}
	}
	return errors.New("subscription not found")
}

type fakePaymentRepo struct {
	payments  map[string]*db_models.Payment
	insertErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*db_models.Payment)}
}

func (f *fakePaymentRepo) Insert(ctx context.Context, payment *db_models.Payment) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments[payment.ID.String()] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id string) (*db_models.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByStripePaymentIntentID(ctx context.Context, intentID string) (*db_models.Payment, error) {
	for _, p := range f.payments {
		if p.StripePaymentIntentID != nil && *p.StripePaymentIntentID == intentID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *db_models.Payment) error {
	f.payments[payment.ID.String()] = payment
	return nil
}

func (f *fakePaymentRepo) ListByUser(ctx context.Context, userID string) ([]db_models.Payment, error) {
	var out []db_models.Payment
	for _, p := range f.payments {
		if p.UserID != nil && p.UserID.String() == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeContactRepo struct {
	contacts  map[string]*db_models.Contact
	insertErr error
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{contacts: make(map[string]*db_models.Contact)}
}

func (f *fakeContactRepo) Insert(ctx context.Context, contact *db_models.Contact) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	f.contacts[contact.ID.String()] = contact
	return nil
}

func (f *fakeContactRepo) FindByID(ctx context.Context, id string) (*db_models.Contact, error) {
	return f.contacts[id], nil
}

func (f *fakeContactRepo) List(ctx context.Context, status string) ([]db_models.Contact, error) {
	var out []db_models.Contact
	for _, c := range f.contacts {
		if status == "" || string(c.Status) == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeContactRepo) UpdateStatus(ctx context.Context, id string, status db_models.ContactStatus) error {
	if c, ok := f.contacts[id]; ok {
		c.Status = status
	}
	return nil
}

type fakeDashboardRepo struct {
	goalsTotal     int64
	goalsCompleted int64
	byCategory     map[string]int64
	gameStats      repositories.GameStats
	bestScores     map[string]int64
	paymentsCount  int64
	paidMinor      int64
}

func (f *fakeDashboardRepo) GoalCounts(ctx context.Context, userID string) (int64, int64, error) {
	return f.goalsTotal, f.goalsCompleted, nil
}

func (f *fakeDashboardRepo) GoalCountsByCategory(ctx context.Context, userID string) (map[string]int64, error) {
	return f.byCategory, nil
}

func (f *fakeDashboardRepo) GameStats(ctx context.Context, userID string) (*repositories.GameStats, error) {
	stats := f.gameStats
	return &stats, nil
}

func (f *fakeDashboardRepo) BestScores(ctx context.Context, userID string) (map[string]int64, error) {
	return f.bestScores, nil
}

func (f *fakeDashboardRepo) PaymentTotals(ctx context.Context, userID string) (int64, int64, error) {
	return f.paymentsCount, f.paidMinor, nil
}

type fakeStripe struct {
	session    *stripe.CheckoutSession
	sessionErr error

	fetched  *stripe.CheckoutSession
	fetchErr error

	customer    *stripe.Customer
	customerErr error

	checkoutParams []stripe.CreateCheckoutSessionParams
}

func (f *fakeStripe) CreateCheckoutSession(ctx context.Context, p stripe.CreateCheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.checkoutParams = append(f.checkoutParams, p)
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return f.session, nil
}

func (f *fakeStripe) GetCheckoutSession(ctx context.Context, id string) (*stripe.CheckoutSession, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.fetched, nil
}

func (f *fakeStripe) CreateCustomer(ctx context.Context, email string) (*stripe.Customer, error) {
	if f.customerErr != nil {
		return nil, f.customerErr
	}
	return f.customer, nil
}
