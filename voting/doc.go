// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the vote submission core: the election status gate,
the eligibility checker, and the ballot submission coordinator.

# Status Gate

Status reads the current election's lifecycle state:

	status, err := voting.Status(db)

It degrades to "upcoming" when no election row exists. Voting is permitted
iff the status is "active" (VotingOpen).

# Eligibility

CheckEligibility answers "may this student vote for this position right now":

	err := voting.CheckEligibility(db, studentID, positionID)

A nil return means eligible; otherwise the sentinel names the reason. The
check is advisory: SubmitBallot does not trust it across the check-to-commit
gap.

# Ballot Submission

SubmitBallot is all-or-nothing across the batch:

	n, err := voting.SubmitBallot(db, studentID, selections)

The algorithm validates shape and referential integrity before any write,
then inserts every vote in one transaction. The UNIQUE (student_id,
position_id) constraint is the concurrency source of truth: a conflict on any
selection rolls back the whole batch and surfaces ErrAlreadyVoted. Two
concurrent overlapping ballots from the same student therefore produce
exactly one success and one conflict, with no partial ballots either way.

# Error Taxonomy

All failures are sentinel errors (errors.go); handlers dispatch on them with
errors.Is to choose HTTP status codes. Validation and business-rule failures
are detected before any mutation and have no side effects.
*/
package voting
