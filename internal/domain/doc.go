// Package domain contains the core entities of the blog service: users,
// posts, and comments. Entities carry their own validation rules and know
// nothing about persistence or transport.
package domain
