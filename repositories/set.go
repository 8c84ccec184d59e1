package repositories

import (
	"gorm.io/gorm"

	"github.com/ascent-cms/models"
)

// Set groups the repositories of every collection
type Set struct {
	Milestones      EntityRepository[models.Milestone]
	HeroStats       EntityRepository[models.HeroStat]
	Clients         EntityRepository[models.Client]
	PricingPackages EntityRepository[models.PricingPackage]
	TeamMembers     EntityRepository[models.TeamMember]
	Partnerships    EntityRepository[models.Partnership]
	ContactInfos    EntityRepository[models.ContactInfo]
	Settings        SettingRepository
}

// NewGormSet creates repositories backed by db
func NewGormSet(db *gorm.DB) *Set {
	return &Set{
		Milestones:      NewGormRepository[models.Milestone](db, models.MilestoneSchema),
		HeroStats:       NewGormRepository[models.HeroStat](db, models.HeroStatSchema),
		Clients:         NewGormRepository[models.Client](db, models.ClientSchema),
		PricingPackages: NewGormRepository[models.PricingPackage](db, models.PricingPackageSchema),
		TeamMembers:     NewGormRepository[models.TeamMember](db, models.TeamMemberSchema),
		Partnerships:    NewGormRepository[models.Partnership](db, models.PartnershipSchema),
		ContactInfos:    NewGormRepository[models.ContactInfo](db, models.ContactInfoSchema),
		Settings:        NewGormSettingRepository(db),
	}
}

// NewMemorySet creates empty in-process repositories
func NewMemorySet() *Set {
	return &Set{
		Milestones:      NewMemoryRepository[models.Milestone](models.MilestoneSchema),
		HeroStats:       NewMemoryRepository[models.HeroStat](models.HeroStatSchema),
		Clients:         NewMemoryRepository[models.Client](models.ClientSchema),
		PricingPackages: NewMemoryRepository[models.PricingPackage](models.PricingPackageSchema),
		TeamMembers:     NewMemoryRepository[models.TeamMember](models.TeamMemberSchema),
		Partnerships:    NewMemoryRepository[models.Partnership](models.PartnershipSchema),
		ContactInfos:    NewMemoryRepository[models.ContactInfo](models.ContactInfoSchema),
		Settings:        NewMemorySettingRepository(),
	}
}
