package helper

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"studio_booking/constants"
	"studio_booking/model"
	"studio_booking/utils"
)

// ScheduleStore owns the reserved intervals. Reserve is the only write path
// and enforces the no-overlap invariant per calendar day.
type ScheduleStore struct {
	DB    *gorm.DB
	Redis *redis.Client
	Clock clockwork.Clock
}

func NewScheduleStore(db *gorm.DB, rdb *redis.Client, clock clockwork.Clock) *ScheduleStore {
	return &ScheduleStore{DB: db, Redis: rdb, Clock: clock}
}

type ReserveInput struct {
	Date     utils.CustomDate
	Start    time.Time
	Duration int
	Location string
	Note     *string
	Policy   model.Category
}

const (
	lockTTL      = 5 * time.Second
	lockAttempts = 10
	lockBackoff  = 50 * time.Millisecond
)

// Lua release only deletes the lock when it still holds our token.
const luaReleaseIfMatch = `
if redis.call('GET', KEYS[1]) == ARGV[1] then
  return redis.call('DEL', KEYS[1])
end
return 0
`

func dateLockKey(date utils.CustomDate) string {
	return fmt.Sprintf("studio_booking:schedule:lock:%s", date.String())
}

// CheckWindow rejects starts outside the category's daily booking window.
func (s *ScheduleStore) CheckWindow(policy model.Category, start time.Time) error {
	if policy.DurationRule == model.DurationMonthly {
		return nil
	}
	hour := start.In(utils.WIB).Hour()
	if hour < policy.WindowStartHour || hour > policy.WindowEndHour {
		return BadRequest(constants.OUTSIDE_BOOKING_WINDOW)
	}
	return nil
}

// Span derives the interval end and the engagement end date from the policy.
func (s *ScheduleStore) Span(in ReserveInput) (time.Time, utils.CustomDate) {
	endTime := in.Start.Add(time.Duration(in.Duration) * time.Hour)
	endDate := utils.NewCustomDate(endTime)
	if in.Policy.DurationRule == model.DurationMonthly {
		endDate = utils.NewCustomDate(in.Start.AddDate(0, 1, 0))
	}
	return endTime, endDate
}

// hasOverlap is the three-clause interval test: the candidate starts inside an
// existing interval, ends inside one, or fully contains one.
func hasOverlap(tx *gorm.DB, date utils.CustomDate, start, end time.Time) (bool, error) {
	var count int64
	err := tx.Model(&model.Schedule{}).
		Where("date = ?", date).
		Where("(time <= ? AND end_time > ?) OR (time < ? AND end_time >= ?) OR (time >= ? AND end_time <= ?)",
			start, start, end, end, start, end).
		Count(&count).Error
	return count > 0, err
}

// ReserveTx runs the overlap check and insert inside the caller's transaction.
func (s *ScheduleStore) ReserveTx(tx *gorm.DB, in ReserveInput) (*model.Schedule, error) {
	if err := s.CheckWindow(in.Policy, in.Start); err != nil {
		return nil, err
	}

	endTime, endDate := s.Span(in)
	overlap, err := hasOverlap(tx, in.Date, in.Start, endTime)
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, BadRequest(constants.SCHEDULE_IS_BOOKED)
	}

	schedule := model.Schedule{
		Date:     in.Date,
		Time:     in.Start,
		EndTime:  endTime,
		EndDate:  endDate,
		Location: in.Location,
		Duration: in.Duration,
		IsBooked: true,
		Note:     in.Note,
	}
	if err := tx.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

// Reserve wraps ReserveTx in its own transaction, used for manual admin slots.
func (s *ScheduleStore) Reserve(ctx context.Context, in ReserveInput) (*model.Schedule, error) {
	release, err := s.LockDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	var schedule *model.Schedule
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		schedule, err = s.ReserveTx(tx, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// LockDate serializes check-then-insert per calendar day via redis SETNX.
// Without redis the overlap check still runs inside the insert transaction;
// the lock only narrows the race window between concurrent requests.
func (s *ScheduleStore) LockDate(ctx context.Context, date utils.CustomDate) (func(), error) {
	if s.Redis == nil {
		return func() {}, nil
	}

	key := dateLockKey(date)
	token := uuid.New().String()
	for i := 0; i < lockAttempts; i++ {
		ok, err := s.Redis.SetNX(ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				s.Redis.Eval(context.Background(), luaReleaseIfMatch, []string{key}, token)
			}, nil
		}
		s.Clock.Sleep(lockBackoff)
	}
	return nil, BadRequest(constants.SCHEDULE_IS_BOOKED)
}

// ManualReservePolicy is the policy for slots the admin blocks out by hand:
// the daily window is relaxed to the full day, and a duration beyond one day
// follows the monthly rule.
func ManualReservePolicy(duration int) model.Category {
	policy := model.Category{
		RequiresSchedule: true,
		WindowStartHour:  0,
		WindowEndHour:    23,
		DurationRule:     model.DurationHourly,
	}
	if duration > 24 {
		policy.DurationRule = model.DurationMonthly
	}
	return policy
}

// DeleteForOrder frees the slot owned by a cancelled order.
func (s *ScheduleStore) DeleteForOrder(tx *gorm.DB, scheduleID uint) error {
	return tx.Delete(&model.Schedule{}, scheduleID).Error
}
