// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs locates and loads CA bundles for the paste client.
//
// Lab machines often lack the corporate trust store, so the paste client
// falls back to the CA bundle that ships with the operating system. The
// package searches a fixed, ordered list of [PEM] bundle paths and decodes
// bundles in [PEM], DER or [PKCS7] form into an [x509.CertPool].
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs
