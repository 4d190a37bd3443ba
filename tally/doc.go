// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally computes aggregated election results.

Results are derived, never stored: every call recomputes counts from the vote
table, so a tally always reflects the latest committed ballots and cannot
drift from its source.

	results, err := tally.ComputeResults(db)
	result, err := tally.ComputePositionResult(db, positionID)

# Ranking

Candidates within a position rank by vote count descending, tie-broken by
candidate ID ascending. The tie-break makes output deterministic: two calls
with no intervening writes return identical ordered results.

# Percentages

percentage = round(votes / totalVotes * 100), or 0 when a position has no
votes. Rounding is independent per candidate, so a position's percentages may
sum to 99 or 101. totalVotes is always the exact sum of its candidates'
counts.
*/
package tally
