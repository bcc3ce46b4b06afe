//go:build darwin && cgo

package locale

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation
#include <stdlib.h>
#import <Foundation/Foundation.h>

static char* currentLanguageCode() {
	@autoreleasepool {
		NSLocale *locale = [NSLocale currentLocale];
		if (locale == nil) {
			return NULL;
		}
		NSString *code = [locale objectForKey:NSLocaleLanguageCode];
		if (code == nil || [code length] == 0) {
			return NULL;
		}
		const char *utf8 = [code UTF8String];
		if (utf8 == NULL) {
			return NULL;
		}
		return strdup(utf8);
	}
}
*/
import "C"

import "unsafe"

type nsLocaleSource struct{}

func (nsLocaleSource) Name() string { return "nslocale" }

func (nsLocaleSource) PreferredLanguage() (string, error) {
	code := C.currentLanguageCode()
	if code == nil {
		return "", ErrNotDetected
	}
	defer C.free(unsafe.Pointer(code))
	return C.GoString(code), nil
}

func platformSources() []Source {
	return []Source{nsLocaleSource{}}
}
