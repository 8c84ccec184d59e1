package services

import (
	"github.com/ascent-cms/models"
	"github.com/ascent-cms/repositories"
)

// Content holds the manager of every content type
type Content struct {
	Milestones      *ContentManager[models.Milestone, *models.Milestone]
	HeroStats       *ContentManager[models.HeroStat, *models.HeroStat]
	Clients         *ContentManager[models.Client, *models.Client]
	PricingPackages *ContentManager[models.PricingPackage, *models.PricingPackage]
	TeamMembers     *ContentManager[models.TeamMember, *models.TeamMember]
	Partnerships    *ContentManager[models.Partnership, *models.Partnership]
	ContactInfos    *ContentManager[models.ContactInfo, *models.ContactInfo]
}

// NewContent creates a manager per content type over repos
func NewContent(repos *repositories.Set, deps ManagerDeps) *Content {
	return &Content{
		Milestones:      NewContentManager[models.Milestone](models.MilestoneSchema, repos.Milestones, deps),
		HeroStats:       NewContentManager[models.HeroStat](models.HeroStatSchema, repos.HeroStats, deps),
		Clients:         NewContentManager[models.Client](models.ClientSchema, repos.Clients, deps),
		PricingPackages: NewContentManager[models.PricingPackage](models.PricingPackageSchema, repos.PricingPackages, deps),
		TeamMembers:     NewContentManager[models.TeamMember](models.TeamMemberSchema, repos.TeamMembers, deps),
		Partnerships:    NewContentManager[models.Partnership](models.PartnershipSchema, repos.Partnerships, deps),
		ContactInfos:    NewContentManager[models.ContactInfo](models.ContactInfoSchema, repos.ContactInfos, deps),
	}
}

// Collections lists the managers in admin display order
func (c *Content) Collections() []Collection {
	return []Collection{
		c.Milestones,
		c.HeroStats,
		c.Clients,
		c.PricingPackages,
		c.TeamMembers,
		c.Partnerships,
		c.ContactInfos,
	}
}
