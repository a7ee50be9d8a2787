package main

// Sample represents a benchmark text sample.
type Sample struct {
	Name string
	Text string
}

// Samples are casual work updates at varying lengths, up to the 5000
// character input limit. Used by the default timing mode.
var Samples = []Sample{
	{
		Name: "tiny",
		Text: "fixed the login bug",
	},
	{
		Name: "short",
		Text: "finally got the flaky payment tests passing. turns out it was a timezone thing in the fixtures. took me two days lol",
	},
	{
		Name: "medium",
		Text: `shipped the new search page today. it's faster, like 450ms down to 120ms on p95. the hard part was getting the index rebuild to not lock the table, ended up doing it in batches overnight. thanks to priya for reviewing at 11pm. next up is fixing the autocomplete which still kinda sucks on mobile`,
	},
	{
		Name: "long",
		Text: `quick recap of the quarter from my side.

we moved the billing service off the old cron box and onto the queue workers. no more missed invoices at month end, which was the whole point. also deleted about 8k lines of dead code while doing it, felt great.

onboarding: wrote the new dev setup script, new hires go from laptop to first PR in about a day now instead of most of a week. got some nice feedback from the last two people who joined.

incidents: we had the redis outage in week 6, i was on call. took 40 minutes to recover, mostly because the runbook was out of date. i rewrote the runbook after and we did a game day to test it.

stuff that didn't go well: the mobile sync rewrite slipped by three weeks because i underestimated the conflict resolution part. lesson learned, spike first then estimate.

next quarter i want to focus on observability, our dashboards are a mess and half the alerts are noise.`,
	},
}

// QualitySamples each target a different kind of casual update.
// Used by -quality mode to eyeball output tone.
var QualitySamples = []Sample{
	{
		Name: "bugfix",
		Text: "fixed a bug that was breaking checkout for like 2% of users",
	},
	{
		Name: "feature",
		Text: "launched dark mode. people asked for it for a year",
	},
	{
		Name: "mundane",
		Text: "had lunch with the team and we talked about the roadmap",
	},
	{
		Name: "setback",
		Text: "my talk got rejected from the conference, kinda bummed",
	},
	{
		Name: "job",
		Text: "last day at the company tomorrow, starting somewhere new in march",
	},
}
