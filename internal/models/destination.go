package models

import "go.mongodb.org/mongo-driver/bson"

// Destination is a travel destination document. The collection owns the schema,
// so every field is passed through as stored.
type Destination bson.M
