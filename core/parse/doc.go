// Package parse converts raw provider output into deck content blocks. It is
// deliberately forgiving: hosted models wrap JSON in prose and code fences and
// produce structurally broken JSON under load, so parsing extracts the
// outermost JSON candidate and falls back to jsonrepair before giving up.
package parse
