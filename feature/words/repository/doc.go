// Package repository persists word records and their sub-records with gorm.
//
// Writes are transactional: a word is stored with all of its definitions,
// examples, phonetics, grammar, metadata and relations, or not at all.
package repository
