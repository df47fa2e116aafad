// C ABI for embedding the price feed in native apps. Build with
// -buildmode=c-shared (or c-archive for iOS). Every returned string is
// owned by the caller and must be released with free_string.
package main

/*
#include <stdlib.h>

typedef void (*price_update_callback)(const void *context);

static void invoke_price_update_callback(price_update_callback cb, const void *context) {
	cb(context);
}
*/
import "C"

import (
	"unsafe"

	"github.com/mstampfer/coin-crab/pkg/types"
)

//export get_crypto_data
func get_crypto_data() *C.char {
	return C.CString(latestPayload())
}

//export get_historical_data
func get_historical_data(symbol, timeframe *C.char) *C.char {
	var sym, tf string
	if symbol != nil {
		sym = C.GoString(symbol)
	}
	if timeframe != nil {
		tf = C.GoString(timeframe)
	}
	return C.CString(historicalPayload(sym, tf))
}

//export get_latest_crypto_prices
func get_latest_crypto_prices(endpoint *C.char) *C.char {
	var url string
	if endpoint != nil {
		url = C.GoString(endpoint)
	}
	return C.CString(endpointPayload(url))
}

//export hello_rust_world
func hello_rust_world() *C.char {
	return C.CString(helloMessage)
}

// register_price_update_callback installs cb as the single active
// callback, replacing any previous one. NULL unregisters. The callback
// fires on every snapshot update with a NULL context pointer; it runs
// on the feed's delivery goroutine, so it must return quickly.
//
//export register_price_update_callback
func register_price_update_callback(cb C.price_update_callback) {
	if cb == nil {
		replaceCallbackSubscription(nil)
		return
	}
	replaceCallbackSubscription(func() canceler {
		subscribe, err := getSubscribe()
		if err != nil {
			return nil
		}
		return subscribe(func([]types.CryptoCurrency) {
			C.invoke_price_update_callback(cb, nil)
		})
	})
}

// free_string releases a string returned by any function above. NULL is
// a no-op. Each string must be freed exactly once.
//
//export free_string
func free_string(s *C.char) {
	if s == nil {
		return
	}
	C.free(unsafe.Pointer(s))
}

func main() {}
