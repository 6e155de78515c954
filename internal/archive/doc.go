// Package archive defines the life archive document model: the single root
// Document aggregate with its journals, albums, events, food menus and
// settings, plus the small set of collection helpers the presentation layer
// uses to create, edit, reorder and delete entities.
//
// # Wire format
//
// All types marshal to the camelCase JSON layout used by the browser client
// and the server store. Enumerations keep their Korean display literals on
// the wire (for example JournalCategory "기타"). Optional text fields are
// pointers so that an absent key and an empty string survive a round trip.
//
// # Invariants
//
//   - ids are unique within a collection and never reassigned;
//   - share ids are unique across journals, albums and events together;
//   - required strings are never absent (empty string is the floor);
//   - enum fields always hold a member of their declared set.
//
// The sanitize package establishes these invariants for untrusted input;
// code in this package assumes them.
package archive
