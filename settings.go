// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package mathsheet

// This file contains the default locations and names used by the
// tools; change these, or set them in a .env file, to suit your own
// layout.

// Directories
const (
	defaultSrc        = "packages/图片"
	defaultCropOut    = "packages/图片_裁剪"
	defaultSmartOut   = "packages/图片_智能裁剪"
	defaultExtractOut = "packages/提取图形"
	defaultFigures    = "packages/svg_figures"
)

// OCR
const (
	defaultTesseract = "tesseract"
	defaultLang      = "chi_sim+eng"
)

// Environment keys
const (
	envFile      = "MATHSHEET_ENV"
	envSrc       = "MATHSHEET_SRC"
	envOut       = "MATHSHEET_OUT"
	envSmartOut  = "MATHSHEET_SMART_OUT"
	envExtract   = "MATHSHEET_EXTRACT"
	envFigures   = "MATHSHEET_FIGURES"
	envTesseract = "TESSERACT_CMD"
	envLang      = "TESSERACT_LANG"
)
