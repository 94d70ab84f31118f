package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jinzhu/gorm"
)

// A Job records one processed image. Jobs run from the command line have no
// guild, channel nor author. Jobs from direct messages have no guild.
type Job struct {
	gorm.Model
	UUID      string `gorm:"unique_index;not null"`
	GuildID   string `gorm:"index"`
	Guild     Guild  `gorm:"association_autoupdate:false;association_autocreate:false"`
	ChannelID string
	AuthorID  string
	Kind      string `gorm:"not null"`
	Source    string
	Width     int
	Height    int

	// Luma range and mean before and after processing
	MinBefore  int
	MaxBefore  int
	MeanBefore float64
	MinAfter   int
	MaxAfter   int
	MeanAfter  float64
}

func (j Job) String() string {
	return fmt.Sprintf("%s %s %dx%d [%d,%d] -> [%d,%d]",
		j.ShortID(), j.Kind, j.Width, j.Height,
		j.MinBefore, j.MaxBefore, j.MinAfter, j.MaxAfter,
	)
}

// ShortID returns the first characters of the job's UUID.
func (j Job) ShortID() string {
	if len(j.UUID) > 8 {
		return j.UUID[:8]
	}
	return j.UUID
}

// BeforeSave is executed just before a Job is saved into the DB
func (j *Job) BeforeSave() error {
	if j.UUID == "" {
		return errors.New("missing job UUID")
	}
	if j.Kind == "" {
		return errors.New("job kind can't be empty")
	}
	return nil
}

// Create creates a new job in the DB
func (j *Job) Create(db *gorm.DB) error {
	return db.Create(j).Error
}

// Delete deletes current job from the DB
func (j *Job) Delete(db *gorm.DB) error {
	return db.Unscoped().Where("id = ?", j.ID).Delete(Job{}).Error
}

// A Scope selects the history a job belongs to: a guild, a direct message
// channel, or the command line when both IDs are empty.
type Scope struct {
	GuildID   string
	ChannelID string
}

// Scope returns the history the job belongs to.
func (j Job) Scope() Scope {
	if j.GuildID != "" {
		return Scope{GuildID: j.GuildID}
	}
	return Scope{ChannelID: j.ChannelID}
}

// Guild jobs are shared by the whole guild, whatever their channel.
func (s Scope) where(db *gorm.DB) *gorm.DB {
	if s.GuildID != "" {
		return db.Where("guild_id = ?", s.GuildID)
	}
	return db.Where("guild_id = ? AND channel_id = ?", "", s.ChannelID)
}

// ListJobs returns the latest jobs of given scope, most recent first.
// A limit <= 0 returns every job.
func ListJobs(db *gorm.DB, scope Scope, limit int) (jobs []Job, err error) {
	q := scope.where(db).Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err = q.Find(&jobs).Error
	return
}

var jobIDPattern = regexp.MustCompile(`^[0-9a-f-]+$`)

// FindJob finds a job of given scope from its UUID or a prefix of it.
// Anything that can't be part of a UUID matches no job.
func FindJob(db *gorm.DB, scope Scope, id string) (*Job, error) {
	j := Job{}
	id = strings.ToLower(id)
	if !jobIDPattern.MatchString(id) {
		return &j, gorm.ErrRecordNotFound
	}
	err := scope.where(db).Where("uuid LIKE ?", id+"%").Order("id desc").First(&j).Error
	return &j, err
}

// PurgeJobs deletes all jobs of given scope but the keep most recent ones.
func PurgeJobs(db *gorm.DB, scope Scope, keep int) (int64, error) {
	var ids []uint
	err := scope.where(db.Model(&Job{})).Order("id desc").Pluck("id", &ids).Error
	if err != nil || len(ids) <= keep {
		return 0, err
	}
	if keep > 0 {
		ids = ids[keep:]
	}
	res := db.Unscoped().Where("id IN (?)", ids).Delete(Job{})
	return res.RowsAffected, res.Error
}
