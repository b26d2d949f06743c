package grouping

import (
	"fmt"
	"time"

	"github.com/Techhackontime999/LinkUp-sub000/internal/config"
	"github.com/Techhackontime999/LinkUp-sub000/internal/model"
)

// GroupBy selects which part of the related entity goes into the group key.
type GroupBy string

const (
	// GroupByCategory merges events whose related entities share a type,
	// e.g. every connection request regardless of the requester.
	GroupByCategory GroupBy = "category"
	// GroupByEntity merges events about the same related entity only.
	GroupByEntity GroupBy = "entity"
)

// Rule bounds a group of one notification type.
type Rule struct {
	Window  time.Duration
	MaxSize int
	GroupBy GroupBy
}

// Rules maps a notification type to its grouping rule.
type Rules map[model.NotificationType]Rule

var fallbackRule = Rule{Window: time.Hour, MaxSize: 10, GroupBy: GroupByEntity}

// DefaultRules returns the built in per-type windows and sizes.
func DefaultRules() Rules {
	return Rules{
		model.NotificationConnectionRequest: {Window: 24 * time.Hour, MaxSize: 10, GroupBy: GroupByCategory},
		model.NotificationPostLike:          {Window: 6 * time.Hour, MaxSize: 20, GroupBy: GroupByEntity},
		model.NotificationPostComment:       {Window: 6 * time.Hour, MaxSize: 20, GroupBy: GroupByEntity},
		model.NotificationMessage:           {Window: time.Hour, MaxSize: 5, GroupBy: GroupByEntity},
		model.NotificationMention:           {Window: time.Hour, MaxSize: 10, GroupBy: GroupByEntity},
		model.NotificationJobUpdate:         {Window: 24 * time.Hour, MaxSize: 10, GroupBy: GroupByCategory},
		model.NotificationSystem:            {Window: time.Hour, MaxSize: 1, GroupBy: GroupByEntity},
	}
}

// For returns the rule of t, falling back to a one hour window of ten.
func (r Rules) For(t model.NotificationType) Rule {
	if rule, ok := r[t]; ok {
		return rule
	}
	return fallbackRule
}

// RulesFrom overlays configured rules on DefaultRules.
func RulesFrom(cfg config.Grouping) (Rules, error) {
	rules := DefaultRules()

	for name, c := range cfg.Rules {
		t := model.NotificationType(name)
		if !t.Valid() {
			return nil, fmt.Errorf("grouping rule %q: unknown notification type", name)
		}
		if c.Window <= 0 {
			return nil, fmt.Errorf("grouping rule %q: window must be positive", name)
		}
		if c.MaxSize <= 0 {
			return nil, fmt.Errorf("grouping rule %q: max_size must be positive", name)
		}

		by := GroupBy(c.GroupBy)
		switch by {
		case "":
			by = GroupByEntity
		case GroupByCategory, GroupByEntity:
		default:
			return nil, fmt.Errorf("grouping rule %q: group_by must be category or entity", name)
		}

		rules[t] = Rule{Window: c.Window, MaxSize: c.MaxSize, GroupBy: by}
	}

	return rules, nil
}

// relatedKey identifies the groups an event may merge into, independent of
// the time window.
func relatedKey(t model.NotificationType, related *model.EntityRef, by GroupBy) string {
	switch {
	case related == nil || related.IsZero():
		return string(t)
	case by == GroupByCategory:
		return string(t) + "|" + related.Type
	default:
		return string(t) + "|" + related.RefID()
	}
}

func groupKey(related string, windowStart time.Time) string {
	return fmt.Sprintf("%s|%d", related, windowStart.UTC().Unix())
}
