package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"

	"stardrop/internal/datastore"
	"stardrop/internal/models"
	"stardrop/internal/services"

	"github.com/robfig/cron/v3"
	"github.com/uptrace/bun"
)

const defaultStatsSchedule = "@every 5m"

type snapshot struct {
	Users     *models.UserStats  `json:"users"`
	Claims    *models.ClaimStats `json:"claims"`
	Referrals int                `json:"referrals"`
	TakenAt   time.Time          `json:"taken_at"`
}

// StatsJob periodically folds campaign totals into the setting table so the
// admin dashboard has a snapshot even when redis caches are cold.
type StatsJob struct {
	Db *bun.DB
}

func NewStatsJob(db *bun.DB) *StatsJob {
	return &StatsJob{Db: db}
}

func (j *StatsJob) Start(cronRunner *cron.Cron) {
	schedule := defaultStatsSchedule
	setting, err := datastore.GetSettingByKey(context.Background(), j.Db, "CRONJOB_TIME_STATS")
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Println(err)
	}
	if setting != nil && setting.Value != "" {
		schedule = setting.Value
	}

	_, err = cronRunner.AddFunc(schedule, j.runScheduledTask)
	log.Println("Stats cronjob start at:", time.Now().Format("2006-01-02 15:04:05"), "cron:", schedule, err)
	j.runScheduledTask()
}

func (j *StatsJob) runScheduledTask() {
	ctx := context.Background()

	userStats, err := datastore.GetUserStats(ctx, j.Db)
	if err != nil {
		log.Println("stats snapshot, user stats:", err)
		return
	}

	claimStats, err := datastore.GetClaimStats(ctx, j.Db)
	if err != nil {
		log.Println("stats snapshot, claim stats:", err)
		return
	}

	referrals, err := datastore.CountReferrals(ctx, j.Db)
	if err != nil {
		log.Println("stats snapshot, referrals:", err)
		return
	}

	b, err := json.Marshal(snapshot{
		Users:     userStats,
		Claims:    claimStats,
		Referrals: referrals,
		TakenAt:   time.Now(),
	})
	if err != nil {
		log.Println("stats snapshot, marshal:", err)
		return
	}

	if _, err := datastore.UpsertSetting(ctx, j.Db, services.SETTING_STATS_SNAPSHOT, string(b)); err != nil {
		log.Println("stats snapshot, save:", err)
		return
	}

	log.Println("Stats snapshot saved:", string(b))
}
