// Package wordlist loads newline-delimited dictionary files into memory and
// selects the words whose length lies within inclusive bounds. The file is read
// into a single owned buffer; every line handed out is a substring of it.
package wordlist
