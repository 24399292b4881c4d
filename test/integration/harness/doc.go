// Package harness builds the fieldscan binary once per test run and runs it
// against a throwaway FIELDSCAN_HOME. Any FIELDSCAN_* variable from the
// developer's shell is dropped so offline mode and debug logging start off.
//
// Assertions cover exit codes, output text, 'sessions progress' JSON counts
// and the rows of exported CSV files.
package harness
