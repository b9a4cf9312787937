package rag

// registerBundled loads the bundled extension catalog. Registration
// order is fixed; Resolve ties and Search ordering depend on it.
func (r *Resolver) registerBundled() {
	// Crypto
	r.register(ExtSHA256, "sha256", "calculate SHA256 hash",
		[]string{"sha256", "hash", "digest", "sha-256"}, 2)
	r.register(ExtHMACSHA256, "hmac_sha256", "calculate HMAC-SHA256",
		[]string{"hmac", "hmac-sha256", "message authentication"}, 3)
	r.register(ExtAES256GCMEncrypt, "aes256_gcm_encrypt", "encrypt with AES-GCM",
		[]string{"aes", "encrypt", "aes-256", "gcm", "encryption"}, 4)
	r.register(ExtAES256GCMDecrypt, "aes256_gcm_decrypt", "decrypt with AES-GCM",
		[]string{"aes", "decrypt", "aes-256", "gcm", "decryption"}, 4)
	r.register(ExtConstantTimeEq, "constant_time_eq", "compare constant time",
		[]string{"constant", "time", "compare", "timing-safe", "secure compare"}, 2)
	r.register(ExtSecureRandom, "secure_random", "generate random bytes",
		[]string{"random", "secure", "bytes", "rng", "cryptographic random"}, 2)
	r.register(ExtPBKDF2SHA256, "pbkdf2_sha256", "derive key with PBKDF2",
		[]string{"pbkdf2", "key derivation", "password", "derive key"}, 4)
	r.register(ExtEd25519Sign, "ed25519_sign", "sign with Ed25519",
		[]string{"ed25519", "sign", "signature", "signing"}, 3)
	r.register(ExtEd25519Verify, "ed25519_verify", "verify Ed25519 signature",
		[]string{"ed25519", "verify", "signature", "verification"}, 4)
	r.register(ExtX25519Derive, "x25519_derive", "derive shared secret",
		[]string{"x25519", "shared secret", "key exchange", "diffie-hellman"}, 3)
	r.register(ExtSHA1, "sha1", "calculate SHA1 hash (legacy)",
		[]string{"sha1", "hash", "legacy"}, 2)

	// Vectors
	r.register(ExtVecNew, "vec_new", "create new vector",
		[]string{"vec", "vector", "new", "create"}, 0)
	r.register(ExtVecWithCapacity, "vec_with_capacity", "create vector with capacity",
		[]string{"vec", "vector", "capacity", "allocate"}, 1)
	r.register(ExtVecPush, "vec_push", "push to vector",
		[]string{"vec", "vector", "push", "append", "add"}, 2)
	r.register(ExtVecPop, "vec_pop", "pop from vector",
		[]string{"vec", "vector", "pop", "remove last"}, 1)
	r.register(ExtVecGet, "vec_get", "get vector element",
		[]string{"vec", "vector", "get", "index", "at"}, 2)
	r.register(ExtVecSet, "vec_set", "set vector element",
		[]string{"vec", "vector", "set", "assign"}, 3)
	r.register(ExtVecLen, "vec_len", "get vector length",
		[]string{"vec", "vector", "len", "length", "size"}, 1)
	r.register(ExtVecFree, "vec_free", "free vector",
		[]string{"vec", "vector", "free", "deallocate"}, 1)

	// Hashmaps
	r.register(ExtHashmapNew, "hashmap_new", "create hashmap",
		[]string{"hashmap", "map", "dict", "new", "create"}, 0)
	r.register(ExtHashmapInsert, "hashmap_insert", "insert into hashmap",
		[]string{"hashmap", "map", "insert", "put", "set"}, 3)
	r.register(ExtHashmapGet, "hashmap_get", "get from hashmap",
		[]string{"hashmap", "map", "get", "lookup", "find"}, 2)
	r.register(ExtHashmapRemove, "hashmap_remove", "remove from hashmap",
		[]string{"hashmap", "map", "remove", "delete"}, 2)
	r.register(ExtHashmapFree, "hashmap_free", "free hashmap",
		[]string{"hashmap", "map", "free", "deallocate"}, 1)

	// Strings
	r.register(ExtStringNew, "string_new", "create new string",
		[]string{"string", "new", "create"}, 0)
	r.register(ExtStringFromBytes, "string_from_bytes", "create string from bytes",
		[]string{"string", "from", "bytes", "convert"}, 2)
	r.register(ExtStringLen, "string_len", "get string length",
		[]string{"string", "len", "length", "size"}, 1)
	r.register(ExtStringConcat, "string_concat", "concatenate strings",
		[]string{"string", "concat", "concatenate", "join", "append"}, 2)
	r.register(ExtStringFree, "string_free", "free string",
		[]string{"string", "free", "deallocate"}, 1)

	// JSON
	r.register(ExtJSONParse, "json_parse", "parse JSON string",
		[]string{"json", "parse", "decode", "deserialize", "from json"}, 1)
	r.register(ExtJSONStringify, "json_stringify", "convert to JSON string",
		[]string{"json", "stringify", "encode", "serialize", "to json"}, 1)
	r.register(ExtJSONGet, "json_get", "get JSON field",
		[]string{"json", "get", "field", "property", "key", "access"}, 2)
	r.register(ExtJSONSet, "json_set", "set JSON field",
		[]string{"json", "set", "field", "property", "update"}, 3)
	r.register(ExtJSONGetType, "json_get_type", "get JSON type",
		[]string{"json", "type", "typeof"}, 1)
	r.register(ExtJSONArrayLen, "json_array_len", "get JSON array length",
		[]string{"json", "array", "length", "len", "size"}, 1)
	r.register(ExtJSONArrayGet, "json_array_get", "get JSON array element",
		[]string{"json", "array", "get", "element", "index", "at"}, 2)
	r.register(ExtJSONArrayPush, "json_array_push", "add to JSON array",
		[]string{"json", "array", "push", "append", "add"}, 2)
	r.register(ExtJSONObjectKeys, "json_object_keys", "get JSON object keys",
		[]string{"json", "object", "keys", "enumerate"}, 1)
	r.register(ExtJSONFree, "json_free", "free JSON handle",
		[]string{"json", "free", "deallocate", "release"}, 1)
	r.register(ExtJSONNewObject, "json_new_object", "create JSON object",
		[]string{"json", "object", "new", "create", "empty object"}, 0)
	r.register(ExtJSONNewArray, "json_new_array", "create JSON array",
		[]string{"json", "array", "new", "create", "empty array"}, 0)

	// HTTP
	r.register(ExtHTTPGet, "http_get", "make HTTP GET request",
		[]string{"http", "get", "fetch", "request", "url"}, 1)
	r.register(ExtHTTPPost, "http_post", "make HTTP POST request",
		[]string{"http", "post", "request", "send"}, 2)
	r.register(ExtHTTPPut, "http_put", "make HTTP PUT request",
		[]string{"http", "put", "request", "update"}, 2)
	r.register(ExtHTTPDelete, "http_delete", "make HTTP DELETE request",
		[]string{"http", "delete", "request", "remove"}, 1)
	r.register(ExtHTTPResponseStatus, "http_response_status", "get HTTP status code",
		[]string{"http", "status", "code", "response status"}, 1)
	r.register(ExtHTTPResponseBody, "http_response_body", "get HTTP response body",
		[]string{"http", "body", "response", "content"}, 1)
	r.register(ExtHTTPResponseFree, "http_free", "free HTTP response",
		[]string{"http", "free", "response", "deallocate"}, 1)
	r.register(ExtHTTPGetWithHeaders, "http_get_with_headers", "HTTP GET with headers",
		[]string{"http", "get", "headers", "request"}, 2)
	r.register(ExtHTTPPostWithHeaders, "http_post_with_headers", "HTTP POST with headers",
		[]string{"http", "post", "headers", "request"}, 3)

	// Compression
	r.register(ExtZlibCompress, "zlib_compress", "compress with zlib",
		[]string{"zlib", "compress", "deflate"}, 1)
	r.register(ExtZlibDecompress, "zlib_decompress", "decompress with zlib",
		[]string{"zlib", "decompress", "inflate"}, 1)
	r.register(ExtGzipCompress, "gzip_compress", "compress with gzip",
		[]string{"gzip", "compress"}, 1)
	r.register(ExtGzipDecompress, "gzip_decompress", "decompress with gzip",
		[]string{"gzip", "decompress"}, 1)

	// Encoding
	r.register(ExtBase64Encode, "base64_encode", "encode as base64",
		[]string{"base64", "encode", "to base64"}, 1)
	r.register(ExtBase64Decode, "base64_decode", "decode base64",
		[]string{"base64", "decode", "from base64"}, 1)
	r.register(ExtHexEncode, "hex_encode", "encode as hex",
		[]string{"hex", "encode", "to hex"}, 1)
	r.register(ExtHexDecode, "hex_decode", "decode hex",
		[]string{"hex", "decode", "from hex"}, 1)
	r.register(ExtURLEncode, "url_encode", "URL encode",
		[]string{"url", "encode", "percent-encode", "urlencode"}, 1)
	r.register(ExtURLDecode, "url_decode", "URL decode",
		[]string{"url", "decode", "percent-decode", "urldecode"}, 1)

	// DateTime
	r.register(ExtDatetimeNow, "datetime_now", "get current time",
		[]string{"datetime", "now", "current", "time", "utc"}, 0)
	r.register(ExtDatetimeParse, "datetime_parse", "parse date string",
		[]string{"datetime", "parse", "date", "string", "strptime"}, 2)
	r.register(ExtDatetimeFormat, "datetime_format", "format date",
		[]string{"datetime", "format", "strftime", "to string"}, 2)
	r.register(ExtDatetimeAddDays, "datetime_add_days", "add days to date",
		[]string{"datetime", "add", "days", "date arithmetic"}, 2)
	r.register(ExtDatetimeDiff, "datetime_diff", "get time difference",
		[]string{"datetime", "diff", "difference", "seconds", "delta"}, 2)

	// Regex
	r.register(ExtRegexMatch, "regex_match", "check regex match",
		[]string{"regex", "match", "test", "is match", "check"}, 2)
	r.register(ExtRegexFind, "regex_find", "find regex match",
		[]string{"regex", "find", "search", "first match"}, 2)
	r.register(ExtRegexReplace, "regex_replace", "replace with regex",
		[]string{"regex", "replace", "substitute", "sub"}, 3)
	r.register(ExtRegexSplit, "regex_split", "split by regex",
		[]string{"regex", "split", "tokenize"}, 2)

	// Filesystem
	r.register(ExtFSRead, "fs_read", "read file contents",
		[]string{"file", "read", "fs", "load", "open file"}, 1)
	r.register(ExtFSWrite, "fs_write", "write file",
		[]string{"file", "write", "save", "fs", "create file"}, 2)
	r.register(ExtFSExists, "fs_exists", "check file exists",
		[]string{"file", "exists", "check", "fs", "is file"}, 1)
	r.register(ExtFSDelete, "fs_delete", "delete file",
		[]string{"file", "delete", "remove", "rm", "fs"}, 1)
	r.register(ExtFSMkdir, "fs_mkdir", "create directory",
		[]string{"mkdir", "create directory", "make dir", "fs"}, 1)
	r.register(ExtFSListDir, "fs_list_dir", "list directory",
		[]string{"list", "directory", "ls", "dir", "fs", "readdir"}, 1)

	// TLS
	r.register(ExtTLSConnect, "tls_connect", "connect with TLS",
		[]string{"tls", "connect", "ssl", "secure connection"}, 2)
	r.register(ExtTLSSend, "tls_send", "send over TLS",
		[]string{"tls", "send", "write", "ssl send"}, 2)
	r.register(ExtTLSRecv, "tls_recv", "receive over TLS",
		[]string{"tls", "recv", "receive", "read", "ssl recv"}, 2)
	r.register(ExtTLSClose, "tls_close", "close TLS connection",
		[]string{"tls", "close", "disconnect", "ssl close"}, 1)

	// X509
	r.register(ExtX509CreateSelfSigned, "x509_create_self_signed", "create self-signed certificate",
		[]string{"x509", "self signed", "certificate", "create"}, 2)
	r.register(ExtX509Parse, "x509_parse", "parse X509 certificate",
		[]string{"x509", "parse", "certificate"}, 1)
	r.register(ExtX509Verify, "x509_verify", "verify X509 certificate",
		[]string{"x509", "verify", "certificate"}, 2)

	// SQLite
	r.register(ExtSQLiteOpen, "sqlite_open", "open SQLite database",
		[]string{"sqlite", "open", "database", "db", "connect"}, 1)
	r.register(ExtSQLiteClose, "sqlite_close", "close SQLite database",
		[]string{"sqlite", "close", "database", "db", "disconnect"}, 1)
	r.register(ExtSQLiteExec, "sqlite_exec", "execute SQLite statement",
		[]string{"sqlite", "exec", "execute", "sql", "run"}, 2)
	r.register(ExtSQLiteQuery, "sqlite_query", "query SQLite database",
		[]string{"sqlite", "query", "select", "sql"}, 2)
	r.register(ExtSQLitePrepare, "sqlite_prepare", "prepare SQLite statement",
		[]string{"sqlite", "prepare", "statement", "sql"}, 2)
	r.register(ExtSQLiteBindInt, "sqlite_bind_int", "bind integer parameter",
		[]string{"sqlite", "bind", "int", "parameter"}, 3)
	r.register(ExtSQLiteBindText, "sqlite_bind_text", "bind text parameter",
		[]string{"sqlite", "bind", "text", "string", "parameter"}, 3)
	r.register(ExtSQLiteBindBlob, "sqlite_bind_blob", "bind blob parameter",
		[]string{"sqlite", "bind", "blob", "binary", "parameter"}, 3)
	r.register(ExtSQLiteStep, "sqlite_step", "step SQLite statement",
		[]string{"sqlite", "step", "next", "row"}, 1)
	r.register(ExtSQLiteReset, "sqlite_reset", "reset SQLite statement",
		[]string{"sqlite", "reset", "statement"}, 1)
	r.register(ExtSQLiteFinalize, "sqlite_finalize", "finalize SQLite statement",
		[]string{"sqlite", "finalize", "statement", "close"}, 1)
	r.register(ExtSQLiteColumnInt, "sqlite_column_int", "get integer column",
		[]string{"sqlite", "column", "int", "integer", "get"}, 2)
	r.register(ExtSQLiteColumnText, "sqlite_column_text", "get text column",
		[]string{"sqlite", "column", "text", "string", "get"}, 2)
	r.register(ExtSQLiteColumnBlob, "sqlite_column_blob", "get blob column",
		[]string{"sqlite", "column", "blob", "binary", "get"}, 2)
	r.register(ExtSQLiteLastInsertID, "sqlite_last_insert_id", "get last insert ID",
		[]string{"sqlite", "last", "insert", "id", "rowid"}, 1)
	r.register(ExtSQLiteChanges, "sqlite_changes", "get number of changes",
		[]string{"sqlite", "changes", "affected", "rows"}, 1)

	// UUID
	r.register(ExtUUIDV4, "uuid_v4", "generate UUID v4",
		[]string{"uuid", "v4", "random", "generate", "guid"}, 0)
	r.register(ExtUUIDV5, "uuid_v5", "generate UUID v5",
		[]string{"uuid", "v5", "namespace", "name", "deterministic"}, 2)
	r.register(ExtUUIDParse, "uuid_parse", "parse UUID string",
		[]string{"uuid", "parse", "string", "from string"}, 1)
	r.register(ExtUUIDToString, "uuid_to_string", "convert UUID to string",
		[]string{"uuid", "to string", "format", "stringify"}, 1)
	r.register(ExtUUIDV7, "uuid_v7", "generate UUID v7",
		[]string{"uuid", "v7", "timestamp", "time-ordered"}, 0)
}
