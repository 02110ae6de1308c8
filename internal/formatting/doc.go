// Package formatting is the built-in formatter provider.
//
// It understands a small spreadsheet pattern language:
//
//	text-format-pattern       @ is replaced by the value's text
//	number-format-pattern     0 # ? , . % with up to three ; sections
//	date-format-pattern       d dd ddd dddd m mm mmm mmmm mmmmm yy yyyy
//	time-format-pattern       h hh m mm s ss AM/PM A/P
//	date-time-format-pattern  both; m next to h or s means minutes
//	general                   no pattern, locale aware numbers
//
// Quoted text and backslash escapes are literal in every pattern. Month and
// weekday names are English; number symbols follow the context locale.
package formatting
