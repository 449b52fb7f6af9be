// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package paste submits text to the remote paste service and returns the
// URL of the created paste.
//
// [Client] is the collaborator used by the diagnostic log. [HTTPClient]
// talks JSON over HTTPS and, before each submission, points itself at a CA
// bundle found on the local machine when its configured bundle is missing.
package paste
