package server

const pageStyle = `body{font-family:sans-serif;margin:2em}
.row{display:flex;gap:8px;align-items:flex-start;margin:8px 0}
.select-colors{display:flex;gap:4px}
.swatch{display:flex;align-items:center;justify-content:center}
.selected{outline:3px solid #333}
.subselected{box-shadow:0 0 0 3px #999 inset}`

// pageScript forwards activations to POST /events and applies live updates.
const pageScript = `(function(){
var app=document.getElementById("app");
function send(hid,type){
  var body=new URLSearchParams({hid:hid,type:type});
  fetch("/events",{method:"POST",body:body}).then(function(r){return r.text()}).then(function(html){app.innerHTML=html});
}
app.addEventListener("click",function(e){
  var t=e.target.closest("[data-on-click]");
  if(t){send(t.dataset.hid,"click")}
});
app.addEventListener("contextmenu",function(e){
  var t=e.target.closest("[data-on-contextmenu]");
  if(t){e.preventDefault();send(t.dataset.hid,"contextmenu")}
});
var ws=new WebSocket((location.protocol==="https:"?"wss://":"ws://")+location.host+"/live");
ws.onmessage=function(m){app.innerHTML=m.data};
})();`
