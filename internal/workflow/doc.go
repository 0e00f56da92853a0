// Package workflow runs the background follow-up sweeper. The manager polls
// the lead store on a fixed interval, finds leads in active stages whose last
// contact is older than the configured threshold, and moves them to the
// follow-up stage through the board move path so status labels stay
// consistent with the stage taxonomy.
//
// Each sweep run is tagged with a generated sweep ID that appears on every
// log line it emits.
package workflow
