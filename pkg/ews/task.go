package ews

import "github.com/beevik/etree"

var taskSchema = newSchema("task",
	fieldDef{name: "ActualWork", kind: intField},
	fieldDef{name: "AssignedTime", kind: dateTimeField, readOnly: true},
	fieldDef{name: "BillingInformation", kind: stringField},
	fieldDef{name: "ChangeCount", kind: intField, readOnly: true},
	fieldDef{name: "Companies", kind: stringListField},
	fieldDef{name: "CompleteDate", kind: dateTimeField},
	fieldDef{name: "Contacts", kind: stringListField},
	fieldDef{name: "DelegationState", kind: stringField, readOnly: true},
	fieldDef{name: "Delegator", kind: stringField, readOnly: true},
	fieldDef{name: "DueDate", kind: dateTimeField},
	fieldDef{name: "IsAssignmentEditable", kind: intField, readOnly: true},
	fieldDef{name: "IsComplete", kind: boolField, readOnly: true},
	fieldDef{name: "IsRecurring", kind: boolField, readOnly: true},
	fieldDef{name: "IsTeamTask", kind: boolField, readOnly: true},
	fieldDef{name: "Mileage", kind: stringField},
	fieldDef{name: "Owner", kind: stringField, readOnly: true},
	fieldDef{name: "PercentComplete", kind: intField},
	fieldDef{name: "StartDate", kind: dateTimeField},
	fieldDef{name: "Status", kind: stringField},
	fieldDef{name: "StatusDescription", kind: stringField, readOnly: true},
	fieldDef{name: "TotalWork", kind: intField},
)

// Task is an item in a tasks folder.
type Task struct {
	ItemBase
	task propertyBag
}

// NewTask returns a transient task with no fields set.
func NewTask() *Task { return &Task{} }

func (*Task) Kind() ItemKind                     { return KindTask }
func (t *Task) Base() *ItemBase                  { return &t.ItemBase }
func (t *Task) ToXML() *etree.Element            { return encodeItem(t, false) }
func (t *Task) variant() (*propertyBag, *schema) { return &t.task, taskSchema }

// Has reports whether the common or task field addressed by p is present.
func (t *Task) Has(p PropertyPath) bool {
	return hasField(t, p)
}

// ActualWork is the time spent on the task, in minutes.
func (t *Task) ActualWork() int     { return getField[int](&t.task, "ActualWork") }
func (t *Task) SetActualWork(n int) { t.task.set("ActualWork", n) }

// AssignedTime is when the task was assigned to its owner.
func (t *Task) AssignedTime() DateTime     { return getField[DateTime](&t.task, "AssignedTime") }
func (t *Task) SetAssignedTime(d DateTime) { t.task.set("AssignedTime", d) }

// BillingInformation is free text for billing the task's work.
func (t *Task) BillingInformation() string     { return getField[string](&t.task, "BillingInformation") }
func (t *Task) SetBillingInformation(s string) { t.task.set("BillingInformation", s) }

// ChangeCount counts the server-side revisions of the task.
func (t *Task) ChangeCount() int     { return getField[int](&t.task, "ChangeCount") }
func (t *Task) SetChangeCount(n int) { t.task.set("ChangeCount", n) }

// Companies lists the companies the task relates to.
func (t *Task) Companies() []string     { return getList[string](&t.task, "Companies") }
func (t *Task) SetCompanies(c []string) { setList(&t.task, "Companies", c) }

// CompleteDate is when the task was marked complete.
func (t *Task) CompleteDate() DateTime     { return getField[DateTime](&t.task, "CompleteDate") }
func (t *Task) SetCompleteDate(d DateTime) { t.task.set("CompleteDate", d) }

// Contacts lists the names of people the task relates to.
func (t *Task) Contacts() []string     { return getList[string](&t.task, "Contacts") }
func (t *Task) SetContacts(c []string) { setList(&t.task, "Contacts", c) }

// DelegationState is the assignment state, e.g. NoMatch or Accepted. Server-set.
func (t *Task) DelegationState() string     { return getField[string](&t.task, "DelegationState") }
func (t *Task) SetDelegationState(s string) { t.task.set("DelegationState", s) }

// Delegator is the display name of whoever assigned the task. Server-set.
func (t *Task) Delegator() string     { return getField[string](&t.task, "Delegator") }
func (t *Task) SetDelegator(s string) { t.task.set("Delegator", s) }

// DueDate is when the task should be finished.
func (t *Task) DueDate() DateTime     { return getField[DateTime](&t.task, "DueDate") }
func (t *Task) SetDueDate(d DateTime) { t.task.set("DueDate", d) }

// IsAssignmentEditable is the server's numeric edit permission for an assigned task.
func (t *Task) IsAssignmentEditable() int     { return getField[int](&t.task, "IsAssignmentEditable") }
func (t *Task) SetIsAssignmentEditable(n int) { t.task.set("IsAssignmentEditable", n) }

// IsComplete is computed by the server from Status.
func (t *Task) IsComplete() bool     { return getField[bool](&t.task, "IsComplete") }
func (t *Task) SetIsComplete(v bool) { t.task.set("IsComplete", v) }

// IsRecurring reports whether the task repeats. Server-set.
func (t *Task) IsRecurring() bool     { return getField[bool](&t.task, "IsRecurring") }
func (t *Task) SetIsRecurring(v bool) { t.task.set("IsRecurring", v) }

// IsTeamTask reports whether the task is shared by a team. Server-set.
func (t *Task) IsTeamTask() bool     { return getField[bool](&t.task, "IsTeamTask") }
func (t *Task) SetIsTeamTask(v bool) { t.task.set("IsTeamTask", v) }

// Mileage is free text for travel associated with the task.
func (t *Task) Mileage() string     { return getField[string](&t.task, "Mileage") }
func (t *Task) SetMileage(s string) { t.task.set("Mileage", s) }

// Owner is the display name of the task owner. Server-set.
func (t *Task) Owner() string     { return getField[string](&t.task, "Owner") }
func (t *Task) SetOwner(s string) { t.task.set("Owner", s) }

// PercentComplete is progress from 0 to 100.
func (t *Task) PercentComplete() int     { return getField[int](&t.task, "PercentComplete") }
func (t *Task) SetPercentComplete(n int) { t.task.set("PercentComplete", n) }

// StartDate is when work on the task begins.
func (t *Task) StartDate() DateTime     { return getField[DateTime](&t.task, "StartDate") }
func (t *Task) SetStartDate(d DateTime) { t.task.set("StartDate", d) }

// Status is the task progress state.
func (t *Task) Status() TaskStatus     { return TaskStatus(getField[string](&t.task, "Status")) }
func (t *Task) SetStatus(s TaskStatus) { t.task.set("Status", string(s)) }

// StatusDescription is the localized text of Status. Server-set.
func (t *Task) StatusDescription() string     { return getField[string](&t.task, "StatusDescription") }
func (t *Task) SetStatusDescription(s string) { t.task.set("StatusDescription", s) }

// TotalWork is the estimated effort, in minutes.
func (t *Task) TotalWork() int     { return getField[int](&t.task, "TotalWork") }
func (t *Task) SetTotalWork(n int) { t.task.set("TotalWork", n) }
