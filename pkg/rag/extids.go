package rag

// Bundled extension ids. These are the single source of truth shared by
// assembly-time resolution and the runtime dispatch table; the resolver
// and the @"intent" syntax both map onto them.
const (
	// === Crypto (1-99) ===
	ExtSHA256                   uint32 = 1
	ExtHMACSHA256               uint32 = 2
	ExtAES256GCMEncrypt         uint32 = 3
	ExtAES256GCMDecrypt         uint32 = 4
	ExtConstantTimeEq           uint32 = 5
	ExtSecureRandom             uint32 = 6
	ExtPBKDF2SHA256             uint32 = 7
	ExtEd25519Sign              uint32 = 8
	ExtEd25519Verify            uint32 = 9
	ExtX25519Derive             uint32 = 10
	ExtChaCha20Poly1305Encrypt  uint32 = 11
	ExtChaCha20Poly1305Decrypt  uint32 = 12
	ExtXChaCha20Poly1305Encrypt uint32 = 13
	ExtXChaCha20Poly1305Decrypt uint32 = 14
	ExtSHA384                   uint32 = 15
	ExtSHA512                   uint32 = 16
	ExtSHA3_256                 uint32 = 17
	ExtSHA3_512                 uint32 = 18
	ExtBLAKE2b512               uint32 = 19
	ExtBLAKE2s256               uint32 = 20
	ExtHMACSHA384               uint32 = 21
	ExtHMACSHA512               uint32 = 22
	ExtHKDFSHA256Extract        uint32 = 23
	ExtHKDFSHA256Expand         uint32 = 24
	ExtP256ECDSASign            uint32 = 25
	ExtP256ECDSAVerify          uint32 = 26
	ExtP256ECDH                 uint32 = 27
	ExtP384ECDSASign            uint32 = 28
	ExtP384ECDSAVerify          uint32 = 29
	ExtP384ECDH                 uint32 = 30
	ExtRSAPKCS1SignSHA256       uint32 = 31
	ExtRSAPKCS1VerifySHA256     uint32 = 32
	ExtRSAOAEPEncryptSHA256     uint32 = 33
	ExtRSAOAEPDecryptSHA256     uint32 = 34
	ExtArgon2idHash             uint32 = 35
	ExtX509ParseCert            uint32 = 36
	ExtX509GetPublicKey         uint32 = 37
	ExtSHA1                     uint32 = 38 // Legacy, for WebSocket handshake
	ExtP256GenerateKeypair      uint32 = 39
	ExtP384GenerateKeypair      uint32 = 40
	ExtP521ECDSASign            uint32 = 41
	ExtP521ECDSAVerify          uint32 = 42
	ExtP521ECDH                 uint32 = 43
	ExtP521GenerateKeypair      uint32 = 44
	ExtRSAGenerateKeypair       uint32 = 45

	// === Vectors (100-119) ===
	ExtVecNew          uint32 = 100
	ExtVecWithCapacity uint32 = 101
	ExtVecPush         uint32 = 102
	ExtVecPop          uint32 = 103
	ExtVecGet          uint32 = 104
	ExtVecSet          uint32 = 105
	ExtVecLen          uint32 = 106
	ExtVecCapacity     uint32 = 107
	ExtVecClear        uint32 = 108
	ExtVecFree         uint32 = 109
	ExtVecExtend       uint32 = 110
	ExtVecInsert       uint32 = 111
	ExtVecRemove       uint32 = 112

	// === Hashmaps (120-139) ===
	ExtHashmapNew      uint32 = 120
	ExtHashmapInsert   uint32 = 121
	ExtHashmapGet      uint32 = 122
	ExtHashmapRemove   uint32 = 123
	ExtHashmapContains uint32 = 124
	ExtHashmapLen      uint32 = 125
	ExtHashmapClear    uint32 = 126
	ExtHashmapFree     uint32 = 127
	ExtHashmapKeys     uint32 = 128
	ExtHashmapValues   uint32 = 129

	// === Strings (140-169) ===
	ExtStringNew        uint32 = 140
	ExtStringFromBytes  uint32 = 141
	ExtStringLen        uint32 = 142
	ExtStringConcat     uint32 = 143
	ExtStringSubstr     uint32 = 144
	ExtStringFind       uint32 = 145
	ExtStringReplace    uint32 = 146
	ExtStringSplit      uint32 = 147
	ExtStringTrim       uint32 = 148
	ExtStringToUpper    uint32 = 149
	ExtStringToLower    uint32 = 150
	ExtStringStartsWith uint32 = 151
	ExtStringEndsWith   uint32 = 152
	ExtStringToBytes    uint32 = 153
	ExtStringFree       uint32 = 154
	ExtStringParseInt   uint32 = 155
	ExtStringParseFloat uint32 = 156
	ExtStringFromInt    uint32 = 157
	ExtStringFromFloat  uint32 = 158

	// === JSON (170-189) ===
	ExtJSONParse      uint32 = 170
	ExtJSONStringify  uint32 = 171
	ExtJSONGet        uint32 = 172
	ExtJSONSet        uint32 = 173
	ExtJSONGetType    uint32 = 174
	ExtJSONArrayLen   uint32 = 175
	ExtJSONArrayGet   uint32 = 176
	ExtJSONArrayPush  uint32 = 177
	ExtJSONObjectKeys uint32 = 178
	ExtJSONFree       uint32 = 179
	ExtJSONNewObject  uint32 = 180
	ExtJSONNewArray   uint32 = 181

	// === HTTP (190-209) ===
	ExtHTTPGet             uint32 = 190
	ExtHTTPPost            uint32 = 191
	ExtHTTPPut             uint32 = 192
	ExtHTTPDelete          uint32 = 193
	ExtHTTPResponseStatus  uint32 = 194
	ExtHTTPResponseBody    uint32 = 195
	ExtHTTPResponseFree    uint32 = 196
	ExtHTTPGetWithHeaders  uint32 = 197
	ExtHTTPPostWithHeaders uint32 = 198

	// === SQLite (260-279) ===
	ExtSQLiteOpen         uint32 = 260
	ExtSQLiteClose        uint32 = 261
	ExtSQLiteExec         uint32 = 262
	ExtSQLiteQuery        uint32 = 263
	ExtSQLitePrepare      uint32 = 264
	ExtSQLiteBindInt      uint32 = 265
	ExtSQLiteBindText     uint32 = 266
	ExtSQLiteBindBlob     uint32 = 267
	ExtSQLiteStep         uint32 = 268
	ExtSQLiteReset        uint32 = 269
	ExtSQLiteFinalize     uint32 = 270
	ExtSQLiteColumnInt    uint32 = 271
	ExtSQLiteColumnText   uint32 = 272
	ExtSQLiteColumnBlob   uint32 = 273
	ExtSQLiteLastInsertID uint32 = 274
	ExtSQLiteChanges      uint32 = 275

	// === UUID (330-339) ===
	ExtUUIDV4       uint32 = 330
	ExtUUIDV5       uint32 = 331
	ExtUUIDParse    uint32 = 332
	ExtUUIDToString uint32 = 333
	ExtUUIDV7       uint32 = 334

	// === Compression (400-419) ===
	ExtZlibCompress   uint32 = 400
	ExtZlibDecompress uint32 = 401
	ExtGzipCompress   uint32 = 402
	ExtGzipDecompress uint32 = 403
	ExtLZ4Compress    uint32 = 404
	ExtLZ4Decompress  uint32 = 405
	ExtZstdCompress   uint32 = 406
	ExtZstdDecompress uint32 = 407

	// === Encoding (420-439) ===
	ExtBase64Encode uint32 = 420
	ExtBase64Decode uint32 = 421
	ExtHexEncode    uint32 = 422
	ExtHexDecode    uint32 = 423
	ExtURLEncode    uint32 = 424
	ExtURLDecode    uint32 = 425

	// === DateTime (440-459) ===
	ExtDatetimeNow     uint32 = 440
	ExtDatetimeParse   uint32 = 441
	ExtDatetimeFormat  uint32 = 442
	ExtDatetimeAddDays uint32 = 443
	ExtDatetimeDiff    uint32 = 444

	// === Regex (460-479) ===
	ExtRegexMatch   uint32 = 460
	ExtRegexFind    uint32 = 461
	ExtRegexReplace uint32 = 462
	ExtRegexSplit   uint32 = 463

	// === Filesystem (480-499) ===
	ExtFSRead    uint32 = 480
	ExtFSWrite   uint32 = 481
	ExtFSExists  uint32 = 482
	ExtFSDelete  uint32 = 483
	ExtFSMkdir   uint32 = 484
	ExtFSListDir uint32 = 485

	// === TLS (500-519) ===
	ExtTLSConnect uint32 = 500
	ExtTLSSend    uint32 = 501
	ExtTLSRecv    uint32 = 502
	ExtTLSClose   uint32 = 503

	// === X509 (520-539) ===
	ExtX509CreateSelfSigned uint32 = 520
	ExtX509Parse            uint32 = 521
	ExtX509Verify           uint32 = 522
	ExtX509GetSubject       uint32 = 523
	ExtX509GetIssuer        uint32 = 524
)
