// Package auth implements registration, login, logout and token
// authentication for riders and drivers.
//
// A Service is bound to one Role and owns three collaborators: a
// CredentialStore holding principals and password hashes, a RevocationStore
// holding tokens revoked by logout, and a TokenIssuer that signs and
// verifies session tokens. A token is accepted only when it is not
// revoked, verifies, carries the service's role and resolves to a stored
// principal.
//
// Stores are provided for MongoDB (MongoStore, MongoRevocationStore), Redis
// (RedisRevocationStore) and memory (MemoryStore, MemoryRevocationStore).
package auth
