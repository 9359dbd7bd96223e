// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Campaign is the predicate function for campaign builders.
type Campaign func(*sql.Selector)

// CreatorProfile is the predicate function for creatorprofile builders.
type CreatorProfile func(*sql.Selector)

// DailyContent is the predicate function for dailycontent builders.
type DailyContent func(*sql.Selector)

// DailyExecution is the predicate function for dailyexecution builders.
type DailyExecution func(*sql.Selector)

// LearningMemory is the predicate function for learningmemory builders.
type LearningMemory func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WebhookEvent is the predicate function for webhookevent builders.
type WebhookEvent func(*sql.Selector)
