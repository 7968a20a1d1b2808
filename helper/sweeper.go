package helper

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"studio_booking/model"
	"studio_booking/utils"
)

// Sweeper cancels orders whose payment window has lapsed. Sweeps are
// idempotent: a swept order no longer matches the predicate.
type Sweeper struct {
	DB    *gorm.DB
	Clock clockwork.Clock

	scheduler      *cron.Cron
	dailyScheduler gocron.Scheduler
}

func NewSweeper(db *gorm.DB, clock clockwork.Clock) *Sweeper {
	return &Sweeper{DB: db, Clock: clock}
}

// Sweep bulk-cancels unpaid orders past their deadline and returns the count.
func (s *Sweeper) Sweep(now time.Time) (int64, error) {
	result := s.DB.Model(&model.Order{}).
		Where("status = ? AND expired_paid < ?", model.OrderUnpaid, now).
		Update("status", model.OrderCancelled)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeactivateExpiredDiscounts turns off codes past their validity date.
func (s *Sweeper) DeactivateExpiredDiscounts(now time.Time) (int64, error) {
	result := s.DB.Model(&model.DiscountCode{}).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", true, utils.NewCustomDate(now)).
		Update("status", false)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Start runs the expiry sweep every 5 minutes and the discount deactivation
// daily at 00:05 WIB.
func (s *Sweeper) Start() {
	s.scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := s.scheduler.AddFunc("*/5 * * * *", func() {
		count, err := s.Sweep(utils.NowWIB(s.Clock))
		if err != nil {
			log.Printf("expiry sweep failed: %v", err)
			return
		}
		if count > 0 {
			log.Printf("expiry sweep cancelled %d order(s)", count)
		}
	})
	if err != nil {
		log.Printf("failed to register expiry sweep: %v", err)
		return
	}
	s.scheduler.Start()
	log.Println("expiry sweeper started (every 5 minutes)")

	daily, err := gocron.NewScheduler(
		gocron.WithLocation(utils.WIB),
		gocron.WithClock(s.Clock),
	)
	if err != nil {
		log.Printf("failed to create daily scheduler: %v", err)
		return
	}
	_, err = daily.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0))),
		gocron.NewTask(func() {
			count, err := s.DeactivateExpiredDiscounts(utils.NowWIB(s.Clock))
			if err != nil {
				log.Printf("discount deactivation failed: %v", err)
				return
			}
			if count > 0 {
				log.Printf("deactivated %d expired discount code(s)", count)
			}
		}),
	)
	if err != nil {
		log.Printf("failed to register discount deactivation: %v", err)
		return
	}
	daily.Start()
	s.dailyScheduler = daily
}

// Stop halts both schedulers on shutdown.
func (s *Sweeper) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
	if s.dailyScheduler != nil {
		if err := s.dailyScheduler.Shutdown(); err != nil {
			log.Printf("failed to stop daily scheduler: %v", err)
		}
	}
}
